// Package gopresetenv resolves declarative compile-target descriptions into
// an ordered set of code-transform and polyfill decisions.
//
// Given the environments the compiled output must support (browsers, a node
// version, an Electron release), the builder decides which syntax transforms
// and which polyfills are necessary, applies user include/exclude overrides,
// and returns the ordered unit list for the host compiler to execute.
//
// # Quick Start
//
//	preset, err := gopresetenv.Build(gopresetenv.Options{
//	    Targets: gopresetenv.Targets{
//	        "chrome":   gopresetenv.ExplicitVersion(55),
//	        "browsers": gopresetenv.BrowserQuery("last 2 versions"),
//	    },
//	    UseBuiltIns: true,
//	})
//
// Options can also be loaded from a YAML file merged with environment
// variables:
//
//	preset, err := gopresetenv.BuildFile(".presetenvrc.yaml")
//
// # Decision Semantics
//
// Targets normalize to a canonical environment→minimum-version map: node
// "current" resolves to the running runtime, electron translates to the
// embedded Chromium, and browser queries reduce to the minimum queried
// release per browser. A transform is required when at least one targeted
// environment is older than the first version supporting the feature
// natively; with no targets at all, everything is required. Excludes remove
// names from the selection and includes are appended afterwards, so an
// include always wins.
//
// # Thread Safety
//
// All public types in this package are safe for concurrent use. Debug
// diagnostics print at most once per Session (by default, once per process).
package gopresetenv

// Build resolves options into the ordered unit list.
//
// This is the recommended entry point. Failure anywhere in validation,
// normalization, or selection aborts the whole build; there is no partial
// preset.
func Build(opts Options, options ...Option) (*Preset, error) {
	cfg, err := newBuildConfig(options...)
	if err != nil {
		return nil, err
	}
	return cfg.build(opts)
}

// BuildFile loads options from a YAML file (merged with PRESETENV__
// environment variables) and resolves them into the ordered unit list.
func BuildFile(path string, options ...Option) (*Preset, error) {
	opts, err := LoadOptions(path)
	if err != nil {
		return nil, err
	}
	return Build(opts, options...)
}

// Normalize converts a raw target specification into canonical form. Most
// callers use Build; Normalize is exposed for hosts that inspect targets
// themselves.
func Normalize(targets Targets, options ...Option) (CanonicalTargets, error) {
	cfg, err := newBuildConfig(options...)
	if err != nil {
		return nil, err
	}
	return cfg.normalize(targets)
}
