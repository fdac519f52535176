package gopresetenv

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

func TestIsRequired(t *testing.T) {
	entry := compatdata.VersionMap{"chrome": 50, "firefox": 45, "safari": 10.1}

	tests := []struct {
		name    string
		targets CanonicalTargets
		want    bool
	}{
		{
			name:    "empty targets are always required",
			targets: CanonicalTargets{},
			want:    true,
		},
		{
			name:    "nil targets are always required",
			targets: nil,
			want:    true,
		},
		{
			name:    "environment missing from entry",
			targets: CanonicalTargets{"chrome": 60, "ie": 11},
			want:    true,
		},
		{
			name:    "target below implemented version",
			targets: CanonicalTargets{"chrome": 49},
			want:    true,
		},
		{
			name:    "target at implemented version is natively supported",
			targets: CanonicalTargets{"chrome": 50},
			want:    false,
		},
		{
			name:    "fractional equality is natively supported",
			targets: CanonicalTargets{"safari": 10.1},
			want:    false,
		},
		{
			name:    "fractional target just below",
			targets: CanonicalTargets{"safari": 10},
			want:    true,
		},
		{
			name:    "all targets above entry",
			targets: CanonicalTargets{"chrome": 60, "firefox": 50, "safari": 11},
			want:    false,
		},
		{
			name:    "one old environment suffices",
			targets: CanonicalTargets{"chrome": 60, "firefox": 44},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRequired(tt.targets, entry))
		})
	}
}

// TestIsRequired_Characterization checks the defining property: required iff
// some targeted environment has no capability entry or targets a version
// strictly below the first supporting one.
func TestIsRequired_Characterization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	envName := gen.OneConstOf(
		"chrome", "edge", "firefox", "safari", "ie", "ios", "node", "opera",
	)
	versions := gen.Float64Range(0, 100)

	properties.Property("required iff an environment demands it", prop.ForAll(
		func(targets map[string]float64, entry map[string]float64) bool {
			want := len(targets) == 0
			for env, targeted := range targets {
				implemented, ok := entry[env]
				if !ok || targeted < implemented {
					want = true
				}
			}
			return IsRequired(targets, entry) == want
		},
		gen.MapOf(envName, versions),
		gen.MapOf(envName, versions),
	))

	properties.Property("exact support everywhere is never required", prop.ForAll(
		func(targets map[string]float64) bool {
			if len(targets) == 0 {
				return true
			}
			entry := make(compatdata.VersionMap, len(targets))
			for env, v := range targets {
				entry[env] = v
			}
			return !IsRequired(targets, entry)
		},
		gen.MapOf(envName, versions),
	))

	properties.TestingRun(t)
}

func TestRequiredFor_NormalizesFirst(t *testing.T) {
	resolver := func(queries []string) ([]string, error) {
		return []string{"chrome 49"}, nil
	}
	entry := compatdata.VersionMap{"chrome": 50}

	required, err := RequiredFor(
		Targets{"browsers": BrowserQuery("fake query")},
		entry,
		WithQueryResolver(resolver),
		WithQueryCacheSize(0),
	)
	require.NoError(t, err)
	assert.True(t, required)

	required, err = RequiredFor(
		Targets{"chrome": ExplicitVersion(50)},
		entry,
	)
	require.NoError(t, err)
	assert.False(t, required)
}
