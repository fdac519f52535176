package gopresetenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

func TestIsBuiltIn(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "es6.map", want: true},
		{name: "es7.object.values", want: true},
		{name: "web.timers", want: true},
		{name: "web.dom.iterable", want: true},
		{name: "transform-es2015-classes", want: false},
		{name: "transform-regenerator", want: false},
		// "es" without an edition digit and dot is not a built-in name.
		{name: "escape", want: false},
		{name: "webpack-plugin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBuiltIn(tt.name))
		})
	}
}

func TestPartitionOverrides(t *testing.T) {
	builtIns, plugins := partitionOverrides([]string{
		"es6.map",
		"transform-es2015-classes",
		"web.timers",
		"transform-regenerator",
		"es6.map", // duplicates survive partitioning
	})

	assert.Equal(t, []string{"es6.map", "web.timers", "es6.map"}, builtIns)
	assert.Equal(t, []string{"transform-es2015-classes", "transform-regenerator"}, plugins)
}

func TestValidateOverrideNames(t *testing.T) {
	require.NoError(t, validateOverrideNames([]string{
		"es6.map", "web.timers", "transform-regenerator",
	}))

	err := validateOverrideNames([]string{"es6.map", "transform-nonsense"})
	var unknownErr *UnknownPluginError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "transform-nonsense", unknownErr.Name)

	err = validateOverrideNames([]string{"es99.imaginary"})
	require.ErrorAs(t, err, &unknownErr)
}

func TestSelectRequired(t *testing.T) {
	table := map[string]compatdata.VersionMap{
		"feature-old":   {"chrome": 40},
		"feature-new":   {"chrome": 60},
		"feature-alien": {"firefox": 10},
	}
	names := []string{"feature-old", "feature-new", "feature-alien"}

	got := selectRequired(CanonicalTargets{"chrome": 50}, names, table)

	// feature-old is natively supported; feature-new is too new; the alien
	// feature has no chrome entry at all.
	assert.Equal(t, []string{"feature-new", "feature-alien"}, got)
}

func TestSelectRequired_EmptyTargetsSelectsEverything(t *testing.T) {
	got := selectRequired(nil, compatdata.PluginNames, compatdata.PluginVersions)
	assert.Equal(t, compatdata.PluginNames, got)
}

func TestComposeOverrides(t *testing.T) {
	tests := []struct {
		name    string
		base    []string
		exclude []string
		include []string
		want    []string
	}{
		{
			name: "no overrides",
			base: []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			name:    "exclude removes",
			base:    []string{"a", "b", "c"},
			exclude: []string{"b"},
			want:    []string{"a", "c"},
		},
		{
			name:    "include appends",
			base:    []string{"a"},
			include: []string{"z"},
			want:    []string{"a", "z"},
		},
		{
			name:    "include wins over exclude",
			base:    []string{"a", "feature-x"},
			exclude: []string{"feature-x"},
			include: []string{"feature-x"},
			want:    []string{"a", "feature-x"},
		},
		{
			name:    "include of an already-selected name does not duplicate",
			base:    []string{"a", "b"},
			include: []string{"b"},
			want:    []string{"a", "b"},
		},
		{
			name:    "duplicate includes collapse, order preserved",
			base:    []string{"a"},
			include: []string{"y", "z", "y"},
			want:    []string{"a", "y", "z"},
		},
		{
			name:    "exclude of an absent name is a no-op",
			base:    []string{"a"},
			exclude: []string{"ghost"},
			want:    []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, composeOverrides(tt.base, tt.exclude, tt.include))
		})
	}
}
