package gopresetenv

import (
	"slices"
	"sync"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

const (
	// PolyfillUnitName is the synthetic unit carrying the computed polyfill
	// requirements back to the host.
	PolyfillUnitName = "transform-polyfill-require"

	// regeneratorTransform is the generator-runtime transform whose presence
	// the polyfill unit reports to the host.
	regeneratorTransform = "transform-regenerator"
)

// Session scopes one-time debug output. Builds sharing a session print
// selection diagnostics at most once between them, no matter how many of
// them request debugging. The package default session makes that scope the
// process.
type Session struct {
	once sync.Once
}

// NewSession creates a fresh session whose debug output has not fired yet.
func NewSession() *Session {
	return &Session{}
}

var defaultSession = NewSession()

func (c *buildConfig) build(opts Options) (*Preset, error) {
	moduleType, err := validateModuleType(opts.ModuleType)
	if err != nil {
		return nil, err
	}
	if err := validateOverrideNames(opts.Include); err != nil {
		return nil, err
	}
	if err := validateOverrideNames(opts.Exclude); err != nil {
		return nil, err
	}

	targets, err := c.normalize(opts.Targets)
	if err != nil {
		return nil, err
	}

	includeBuiltIns, includePlugins := partitionOverrides(opts.Include)
	excludeBuiltIns, excludePlugins := partitionOverrides(opts.Exclude)

	transforms := selectRequired(targets, compatdata.PluginNames, compatdata.PluginVersions)
	transforms = composeOverrides(transforms, excludePlugins, includePlugins)

	var polyfills []string
	if opts.UseBuiltIns {
		required := selectRequired(targets, compatdata.BuiltInNames, compatdata.BuiltInVersions)
		base := append(required, compatdata.DefaultInclude...)
		polyfills = composeOverrides(base, excludeBuiltIns, includeBuiltIns)
	}

	units, err := c.assembleUnits(opts, moduleType, transforms, polyfills)
	if err != nil {
		return nil, err
	}

	// The latch fires only for builds that succeed, so a failed debug build
	// does not suppress diagnostics for a later one in the same session.
	if opts.Debug {
		c.session.once.Do(func() {
			c.logSelection(targets, moduleType, transforms, polyfills)
		})
	}

	return &Preset{
		Units:      units,
		Targets:    targets,
		Transforms: transforms,
		Polyfills:  polyfills,
	}, nil
}

// validateModuleType resolves the module-system identifier, defaulting to
// CommonJS when unset.
func validateModuleType(mt ModuleType) (ModuleType, error) {
	if mt == "" {
		return ModuleCommonJS, nil
	}
	if mt == ModuleNone {
		return mt, nil
	}
	if _, ok := compatdata.ModuleTransforms[string(mt)]; !ok {
		return "", &ConfigError{Key: "moduleType", Value: string(mt), Reason: "expected commonjs, amd, umd, systemjs, or none"}
	}
	return mt, nil
}

// assembleUnits produces the final ordered unit list: module transform
// first, then the selected transforms, then the polyfill-requirement unit.
// Every name must resolve through the registry.
func (c *buildConfig) assembleUnits(opts Options, moduleType ModuleType, transforms, polyfills []string) ([]Unit, error) {
	units := make([]Unit, 0, len(transforms)+2)

	appendUnit := func(name string, conf UnitConfig) error {
		if _, err := c.registry.Lookup(name); err != nil {
			return err
		}
		units = append(units, Unit{Name: name, Config: conf})
		return nil
	}

	if moduleType != ModuleNone {
		name := compatdata.ModuleTransforms[string(moduleType)]
		if err := appendUnit(name, UnitConfig{Loose: opts.Loose}); err != nil {
			return nil, err
		}
	}

	for _, name := range transforms {
		if err := appendUnit(name, UnitConfig{Loose: opts.Loose}); err != nil {
			return nil, err
		}
	}

	if opts.UseBuiltIns {
		conf := UnitConfig{
			Polyfills:   polyfills,
			Regenerator: slices.Contains(transforms, regeneratorTransform),
		}
		if err := appendUnit(PolyfillUnitName, conf); err != nil {
			return nil, err
		}
	}

	return units, nil
}

// logSelection prints the resolved targets and, for every selected unit, the
// capability evidence restricted to the targeted environments.
func (c *buildConfig) logSelection(targets CanonicalTargets, moduleType ModuleType, transforms, polyfills []string) {
	log := c.log(true)

	log.Info("resolved targets", "targets", targets.String(), "modules", string(moduleType))
	for _, name := range transforms {
		log.Info("using plugin", "name", name,
			"supportedBy", supportedSubset(compatdata.PluginVersions[name], targets).String())
	}
	for _, name := range polyfills {
		log.Info("using polyfill", "name", name,
			"supportedBy", supportedSubset(compatdata.BuiltInVersions[name], targets).String())
	}
}

// supportedSubset restricts a capability entry to the targeted environments.
func supportedSubset(entry compatdata.VersionMap, targets CanonicalTargets) CanonicalTargets {
	subset := make(CanonicalTargets)
	for env := range targets {
		if v, ok := entry[env]; ok {
			subset[env] = v
		}
	}
	return subset
}
