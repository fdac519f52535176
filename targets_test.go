package gopresetenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		want    Targets
		wantErr bool
	}{
		{
			name: "node true means current runtime",
			raw:  map[string]any{"node": true},
			want: Targets{"node": CurrentRuntime()},
		},
		{
			name: "node current string",
			raw:  map[string]any{"node": "current"},
			want: Targets{"node": CurrentRuntime()},
		},
		{
			name: "node numeric",
			raw:  map[string]any{"node": 6.5},
			want: Targets{"node": ExplicitVersion(6.5)},
		},
		{
			name:    "node false is invalid",
			raw:     map[string]any{"node": false},
			wantErr: true,
		},
		{
			name:    "node arbitrary string is invalid",
			raw:     map[string]any{"node": "6.5"},
			wantErr: true,
		},
		{
			name: "electron accepts strings",
			raw:  map[string]any{"electron": "1.8"},
			want: Targets{"electron": VersionString("1.8")},
		},
		{
			name: "electron numeric is stringified",
			raw:  map[string]any{"electron": 1.8},
			want: Targets{"electron": VersionString("1.8")},
		},
		{
			name: "browsers single query string",
			raw:  map[string]any{"browsers": "last 2 versions"},
			want: Targets{"browsers": BrowserQuery("last 2 versions")},
		},
		{
			name: "browsers query list",
			raw:  map[string]any{"browsers": []any{"chrome 50", "ie 8"}},
			want: Targets{"browsers": BrowserQuery("chrome 50", "ie 8")},
		},
		{
			name: "browsers invalid shape drops the key",
			raw:  map[string]any{"browsers": 42, "chrome": 50},
			want: Targets{"chrome": ExplicitVersion(50)},
		},
		{
			name: "direct key integer",
			raw:  map[string]any{"chrome": 50},
			want: Targets{"chrome": ExplicitVersion(50)},
		},
		{
			name:    "direct key string version is a config error",
			raw:     map[string]any{"chrome": "50"},
			wantErr: true,
		},
		{
			name: "empty input",
			raw:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTargets(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_NodeCurrentRuntime(t *testing.T) {
	got, err := Normalize(
		Targets{"node": CurrentRuntime()},
		WithRuntimeVersion(11.2),
	)
	require.NoError(t, err)
	assert.Equal(t, CanonicalTargets{"node": 11.2}, got)
}

func TestNormalize_NodeCurrentRuntimeDetectionFailure(t *testing.T) {
	_, err := Normalize(Targets{"node": CurrentRuntime()}, func(c *buildConfig) error {
		c.runtimeVersion = func() (float64, error) { return 0, ErrRuntimeVersionUnavailable }
		return nil
	})
	require.ErrorIs(t, err, ErrRuntimeVersionUnavailable)
}

func TestNormalize_Electron(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    float64
		wantErr error
	}{
		{name: "literal 1 means 1.0", version: "1", want: 49},
		{name: "major.minor lookup", version: "1.8", want: 59},
		{name: "patch releases collapse to the series", version: "1.8.2", want: 59},
		{name: "unmapped version", version: "99.9", wantErr: &UnsupportedVersionError{}},
		{name: "malformed version", version: "1.x", wantErr: &MalformedVersionError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(Targets{"electron": VersionString(tt.version)})
			switch tt.wantErr.(type) {
			case *UnsupportedVersionError:
				var e *UnsupportedVersionError
				require.ErrorAs(t, err, &e)
			case *MalformedVersionError:
				var e *MalformedVersionError
				require.ErrorAs(t, err, &e)
			default:
				require.NoError(t, err)
				assert.Equal(t, CanonicalTargets{"chrome": tt.want}, got)
				assert.NotContains(t, got, "electron")
			}
		})
	}
}

func TestNormalize_ElectronOverwritesChrome(t *testing.T) {
	got, err := Normalize(Targets{
		"chrome":   ExplicitVersion(60),
		"electron": VersionString("1.0"),
	})
	require.NoError(t, err)
	assert.Equal(t, CanonicalTargets{"chrome": 49}, got)
}

func TestNormalize_BrowserQueryMinimums(t *testing.T) {
	resolver := func(queries []string) ([]string, error) {
		return []string{"chrome 50", "chrome 60", "ie 8", "quxbrowser 10", "safari TP"}, nil
	}

	got, err := Normalize(
		Targets{"browsers": BrowserQuery("irrelevant")},
		WithQueryResolver(resolver),
		WithQueryCacheSize(0),
	)
	require.NoError(t, err)

	// Minimum per browser; unrecognized names and non-numeric versions drop.
	assert.Equal(t, CanonicalTargets{"chrome": 50, "ie": 8}, got)
}

func TestNormalize_BrowserQueryFractionalAndRangedVersions(t *testing.T) {
	resolver := func(queries []string) ([]string, error) {
		return []string{
			"android 4.4", "android 67",
			"safari 10.1",
			"ios_saf 10.0-10.2", "ios_saf 12.2",
			"firefox -x", // no leading digit, drops
		}, nil
	}

	got, err := Normalize(
		Targets{"browsers": BrowserQuery("irrelevant")},
		WithQueryResolver(resolver),
		WithQueryCacheSize(0),
	)
	require.NoError(t, err)

	// Fractional and ranged releases reduce to their leading integer; the
	// oldest queried release still wins.
	assert.Equal(t, CanonicalTargets{"android": 4, "safari": 10, "ios": 10}, got)
}

func TestNormalize_DefaultResolverKeepsFractionalReleases(t *testing.T) {
	got, err := Normalize(
		Targets{"browsers": BrowserQuery("last 2 android versions")},
		WithQueryCacheSize(0),
	)
	require.NoError(t, err)
	// The snapshot's last two android releases are 4.4 and 67.
	assert.Equal(t, CanonicalTargets{"android": 4}, got)

	got, err = Normalize(
		Targets{"browsers": BrowserQuery("safari 10.1")},
		WithQueryCacheSize(0),
	)
	require.NoError(t, err)
	assert.Equal(t, CanonicalTargets{"safari": 10}, got)
}

func TestNormalize_DirectKeysTakePrecedenceOverQuery(t *testing.T) {
	resolver := func(queries []string) ([]string, error) {
		return []string{"chrome 50", "ie 8"}, nil
	}

	got, err := Normalize(
		Targets{
			"browsers": BrowserQuery("irrelevant"),
			"node":     ExplicitVersion(10),
			"ie":       ExplicitVersion(11),
		},
		WithQueryResolver(resolver),
		WithQueryCacheSize(0),
	)
	require.NoError(t, err)

	assert.Equal(t, CanonicalTargets{"chrome": 50, "ie": 11, "node": 10}, got)
	assert.NotContains(t, got, "browsers")
}

func TestNormalize_QueryResolutionIsCached(t *testing.T) {
	calls := 0
	resolver := func(queries []string) ([]string, error) {
		calls++
		return []string{"chrome 63"}, nil
	}

	// Distinctive query so the shared cache cannot collide with other tests.
	targets := Targets{"browsers": BrowserQuery("chrome 63 memo-check")}

	for i := 0; i < 3; i++ {
		got, err := Normalize(targets, WithQueryResolver(resolver))
		require.NoError(t, err)
		require.Equal(t, CanonicalTargets{"chrome": 63}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestNormalize_QueryResolverError(t *testing.T) {
	resolveErr := errors.New("resolver exploded")
	_, err := Normalize(
		Targets{"browsers": BrowserQuery("whatever")},
		WithQueryResolver(func([]string) ([]string, error) { return nil, resolveErr }),
		WithQueryCacheSize(0),
	)
	require.ErrorIs(t, err, resolveErr)
}

func TestNormalize_StringVersionOnDirectKey(t *testing.T) {
	_, err := Normalize(Targets{"chrome": VersionString("50")})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "chrome", cfgErr.Key)
}

func TestNormalize_EmptyTargets(t *testing.T) {
	got, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseRuntimeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "v18.17.1", want: 18.17},
		{in: "6.5.0", want: 6.5},
		{in: "v11.0.0", want: 11},
		{in: "nonsense", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRuntimeVersion(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrRuntimeVersionUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
