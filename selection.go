package gopresetenv

import (
	"regexp"
	"slices"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

// builtInPattern classifies capability names: ECMAScript-edition and
// web-platform feature identifiers are built-ins, everything else is a
// syntax transform. Classification is pure pattern matching, not a table
// lookup.
var builtInPattern = regexp.MustCompile(`^(es\d+|web)\.`)

// IsBuiltIn reports whether a capability name identifies a polyfillable
// built-in rather than a syntax transform.
func IsBuiltIn(name string) bool {
	return builtInPattern.MatchString(name)
}

// partitionOverrides splits override names into the built-in and plugin
// subsets, preserving order and duplicates.
func partitionOverrides(names []string) (builtIns, plugins []string) {
	for _, name := range names {
		if IsBuiltIn(name) {
			builtIns = append(builtIns, name)
		} else {
			plugins = append(plugins, name)
		}
	}
	return builtIns, plugins
}

// validateOverrideNames rejects override names absent from the capability
// tables.
func validateOverrideNames(names []string) error {
	for _, name := range names {
		if IsBuiltIn(name) {
			if _, ok := compatdata.BuiltInVersions[name]; ok {
				continue
			}
			if slices.Contains(compatdata.DefaultInclude, name) {
				continue
			}
		} else if _, ok := compatdata.PluginVersions[name]; ok {
			continue
		}
		return &UnknownPluginError{Name: name}
	}
	return nil
}

// selectRequired keeps the names whose capability entry makes them required
// for the targets, in table order.
func selectRequired(targets CanonicalTargets, names []string, table map[string]compatdata.VersionMap) []string {
	var selected []string
	for _, name := range names {
		if IsRequired(targets, table[name]) {
			selected = append(selected, name)
		}
	}
	return selected
}

// composeOverrides removes excluded names from the base selection, then
// appends included ones. Includes are applied after excludes, so an explicit
// include always wins even when the same name is excluded. The result keeps
// base order first, then include order, with duplicates collapsed to their
// first occurrence.
func composeOverrides(base, exclude, include []string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	out := make([]string, 0, len(base)+len(include))
	seen := make(map[string]bool, len(base)+len(include))
	for _, name := range base {
		if excluded[name] || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, name := range include {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
