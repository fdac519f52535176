package gopresetenv

import (
	"fmt"
	"sort"
	"strings"
)

// TargetKind discriminates the variants of a TargetValue.
type TargetKind int

const (
	// TargetVersion is an explicit numeric minimum version.
	TargetVersion TargetKind = iota

	// TargetVersionString is a version supplied as a string. Only the
	// electron key accepts this variant; it is translated during
	// normalization. Any other key fails with ConfigError.
	TargetVersionString

	// TargetCurrentRuntime resolves to the running runtime's version at
	// normalization time. Only meaningful for the node key.
	TargetCurrentRuntime

	// TargetQuery is a browser-support query resolved through the query
	// resolver. Only meaningful for the browsers key.
	TargetQuery
)

// TargetValue is the tagged union of version constraints a target key can
// carry. Construct values with ExplicitVersion, VersionString,
// CurrentRuntime, or BrowserQuery.
type TargetValue struct {
	kind    TargetKind
	version float64
	raw     string
	queries []string
}

// ExplicitVersion returns a constraint for a concrete minimum version.
func ExplicitVersion(v float64) TargetValue {
	return TargetValue{kind: TargetVersion, version: v}
}

// VersionString returns a string-form version constraint. Valid only for the
// electron key.
func VersionString(s string) TargetValue {
	return TargetValue{kind: TargetVersionString, raw: s}
}

// CurrentRuntime returns a constraint resolving to the running runtime's
// version. Valid only for the node key.
func CurrentRuntime() TargetValue {
	return TargetValue{kind: TargetCurrentRuntime}
}

// BrowserQuery returns a browser-support query constraint. Valid only for
// the browsers key.
func BrowserQuery(queries ...string) TargetValue {
	return TargetValue{kind: TargetQuery, queries: queries}
}

// Kind reports which variant the value holds.
func (v TargetValue) Kind() TargetKind { return v.kind }

// Version returns the numeric version for TargetVersion values.
func (v TargetValue) Version() float64 { return v.version }

// Raw returns the string version for TargetVersionString values.
func (v TargetValue) Raw() string { return v.raw }

// Queries returns the query list for TargetQuery values.
func (v TargetValue) Queries() []string { return v.queries }

// Targets is a raw target specification: environment key to version
// constraint. The node, electron, and browsers keys are shorthand expanded
// during normalization; every other key names an environment directly.
type Targets map[string]TargetValue

// CanonicalTargets is the normalized form: canonical environment name to
// minimum numeric version. No electron or browsers key survives
// normalization.
type CanonicalTargets map[string]float64

// String renders the targets sorted by environment name, for diagnostics.
func (t CanonicalTargets) String() string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %g", name, t[name])
	}
	sb.WriteByte('}')
	return sb.String()
}

// ModuleType identifies the module system to transform to, or ModuleNone to
// skip module transformation.
type ModuleType string

const (
	ModuleCommonJS ModuleType = "commonjs"
	ModuleAMD      ModuleType = "amd"
	ModuleUMD      ModuleType = "umd"
	ModuleSystemJS ModuleType = "systemjs"
	ModuleNone     ModuleType = "none"
)

// Options configures a preset build. The zero value targets nothing (every
// transform selected), transforms modules to CommonJS, and selects no
// polyfills.
type Options struct {
	// Targets constrains the environments the output must support. Empty or
	// nil means no constraints: every transform is required.
	Targets Targets `json:"targets,omitempty"`

	// Include forces capability names into the selection, even if the
	// targets prove them unnecessary or they are also excluded.
	Include []string `json:"include,omitempty"`

	// Exclude removes capability names from the selection.
	Exclude []string `json:"exclude,omitempty"`

	// UseBuiltIns enables polyfill selection and the synthetic
	// polyfill-requirement unit.
	UseBuiltIns bool `json:"use_built_ins,omitempty"`

	// ModuleType selects the module transform. Empty defaults to
	// ModuleCommonJS; ModuleNone disables module transformation.
	ModuleType ModuleType `json:"module_type,omitempty"`

	// Loose is forwarded verbatim into every unit's configuration.
	Loose bool `json:"loose,omitempty"`

	// Debug prints one-time diagnostics describing the resolved targets and
	// the selection evidence.
	Debug bool `json:"debug,omitempty"`
}

// UnitConfig is the configuration handed to a selected unit.
type UnitConfig struct {
	// Loose mirrors Options.Loose.
	Loose bool `json:"loose,omitempty"`

	// Polyfills lists the selected polyfill names. Set only on the
	// polyfill-requirement unit.
	Polyfills []string `json:"polyfills,omitempty"`

	// Regenerator reports whether the generator-runtime transform is among
	// the selected transforms. Set only on the polyfill-requirement unit.
	Regenerator bool `json:"regenerator,omitempty"`
}

// Unit is one entry of the final ordered plugin list.
type Unit struct {
	// Name identifies the transform or synthetic unit.
	Name string `json:"name"`

	// Config is the unit's configuration.
	Config UnitConfig `json:"config"`
}

// Preset is the result of a build: the ordered unit list plus the resolved
// state it was derived from.
type Preset struct {
	// Units is the ordered plugin list: module transform first, then
	// required transforms, then the polyfill-requirement unit if polyfills
	// are enabled.
	Units []Unit `json:"units"`

	// Targets is the canonical target set the selection was computed for.
	Targets CanonicalTargets `json:"targets"`

	// Transforms lists the selected transform names after override
	// composition, in application order.
	Transforms []string `json:"transforms"`

	// Polyfills lists the selected polyfill names. Empty unless UseBuiltIns
	// was set.
	Polyfills []string `json:"polyfills,omitempty"`
}
