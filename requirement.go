package gopresetenv

import "github.com/albertocavalcante/go-presetenv/compatdata"

// IsRequired reports whether a feature with the given capability entry must
// be transformed (or polyfilled) for the canonical targets.
//
// The decision is conservative: an empty target set proves nothing
// unnecessary, so everything is required. A targeted environment missing
// from the capability entry never supports the feature natively, which alone
// makes it required. Otherwise the comparison is strict less-than: a target
// exactly at the first supporting version runs the feature natively and
// needs no transform.
func IsRequired(targets CanonicalTargets, entry compatdata.VersionMap) bool {
	if len(targets) == 0 {
		return true
	}
	for env, targeted := range targets {
		implemented, ok := entry[env]
		if !ok {
			return true
		}
		if targeted < implemented {
			return true
		}
	}
	return false
}

// RequiredFor normalizes a raw target specification and evaluates the
// capability entry against it. Callers holding canonical targets should use
// IsRequired directly.
func RequiredFor(targets Targets, entry compatdata.VersionMap, options ...Option) (bool, error) {
	cfg, err := newBuildConfig(options...)
	if err != nil {
		return false, err
	}
	canonical, err := cfg.normalize(targets)
	if err != nil {
		return false, err
	}
	return IsRequired(canonical, entry), nil
}
