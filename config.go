package gopresetenv

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes the environment variables merged over the options file
// (prefix `PRESETENV__`, delimiter `__`).
const envPrefix = "PRESETENV__"

// fileOptions is the on-disk options shape. Targets and Modules stay untyped
// here and go through their validation boundaries, because both accept mixed
// YAML shapes (modules takes a system name or the literal false).
type fileOptions struct {
	Targets     map[string]any `koanf:"targets"`
	Include     []string       `koanf:"include"`
	Exclude     []string       `koanf:"exclude"`
	UseBuiltIns bool           `koanf:"use_built_ins"`
	Modules     any            `koanf:"modules"`
	Loose       bool           `koanf:"loose"`
	Debug       bool           `koanf:"debug"`
}

// LoadOptions reads build options from a YAML file, merged with
// PRESETENV__-prefixed environment variables. A missing file is not an
// error; env-only configuration is valid.
func LoadOptions(path string) (Options, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Options{}, err
		}
	}
	_ = k.Load(env.Provider(envPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)

	var raw fileOptions
	if err := k.Unmarshal("", &raw); err != nil {
		return Options{}, err
	}

	targets, err := ParseTargets(raw.Targets)
	if err != nil {
		return Options{}, err
	}

	moduleType, err := moduleTypeFromConfig(raw.Modules)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Targets:     targets,
		Include:     raw.Include,
		Exclude:     raw.Exclude,
		UseBuiltIns: raw.UseBuiltIns,
		ModuleType:  moduleType,
		Loose:       raw.Loose,
		Debug:       raw.Debug,
	}, nil
}

// moduleTypeFromConfig interprets the on-disk modules value: a module-system
// name, or false (bool, or the strings "false"/"none" as env vars and quoted
// YAML supply them) to disable module transformation.
func moduleTypeFromConfig(v any) (ModuleType, error) {
	switch m := v.(type) {
	case nil:
		return ModuleCommonJS, nil
	case bool:
		if !m {
			return ModuleNone, nil
		}
		return "", &ConfigError{Key: "modules", Value: m, Reason: "expected a module system name or false"}
	case string:
		switch m {
		case "":
			return ModuleCommonJS, nil
		case "false", "none":
			return ModuleNone, nil
		default:
			return ModuleType(m), nil
		}
	default:
		return "", &ConfigError{Key: "modules", Value: v, Reason: "expected a module system name or false"}
	}
}
