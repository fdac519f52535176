package gopresetenv

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

// Shorthand target keys expanded during normalization.
const (
	keyNode     = "node"
	keyElectron = "electron"
	keyBrowsers = "browsers"
	keyChrome   = "chrome"
)

// ParseTargets validates an untyped target specification, as read from an
// options file, into the tagged form. This is the single place shape
// sniffing happens; everything past it works with validated variants.
//
// Rules follow the raw-options contract: node accepts a number, true, or
// "current"; electron accepts a number or version string; browsers accepts a
// query string or list of query strings (any other shape drops the key);
// every other key must carry a number.
func ParseTargets(raw map[string]any) (Targets, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	targets := make(Targets, len(raw))
	for key, value := range raw {
		switch key {
		case keyBrowsers:
			if queries, ok := browserQueries(value); ok {
				targets[key] = BrowserQuery(queries...)
			}
			// Other shapes skip the browsers expansion entirely.

		case keyNode:
			switch v := value.(type) {
			case bool:
				if !v {
					return nil, &ConfigError{Key: key, Value: v, Reason: "expected a version number, true, or \"current\""}
				}
				targets[key] = CurrentRuntime()
			case string:
				if v != "current" {
					return nil, &ConfigError{Key: key, Value: v, Reason: "expected a version number, true, or \"current\""}
				}
				targets[key] = CurrentRuntime()
			default:
				n, ok := numericValue(value)
				if !ok {
					return nil, &ConfigError{Key: key, Value: value, Reason: "expected a version number, true, or \"current\""}
				}
				targets[key] = ExplicitVersion(n)
			}

		case keyElectron:
			switch v := value.(type) {
			case string:
				targets[key] = VersionString(v)
			default:
				n, ok := numericValue(value)
				if !ok {
					return nil, &ConfigError{Key: key, Value: value, Reason: "expected a version number or string"}
				}
				targets[key] = VersionString(strconv.FormatFloat(n, 'f', -1, 64))
			}

		default:
			n, ok := numericValue(value)
			if !ok {
				return nil, &ConfigError{Key: key, Value: value, Reason: "target version must be a number"}
			}
			targets[key] = ExplicitVersion(n)
		}
	}
	return targets, nil
}

// browserQueries extracts a valid browsers value: a query string or a
// sequence of query strings.
func browserQueries(value any) ([]string, bool) {
	switch v := value.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []any:
		queries := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			queries = append(queries, s)
		}
		return queries, true
	}
	return nil, false
}

func numericValue(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// normalize converts a raw target specification into canonical form:
// current-runtime markers resolved, electron rewritten to chrome, browser
// queries expanded to per-browser minimums, every value numeric. The input
// is never mutated.
func (c *buildConfig) normalize(targets Targets) (CanonicalTargets, error) {
	out := make(CanonicalTargets, len(targets))

	for key, value := range targets {
		switch key {
		case keyBrowsers, keyElectron:
			// Expanded below.

		case keyNode:
			switch value.Kind() {
			case TargetCurrentRuntime:
				v, err := c.runtimeVersion()
				if err != nil {
					return nil, err
				}
				out[key] = v
			case TargetVersion:
				out[key] = value.Version()
			default:
				return nil, &ConfigError{Key: key, Value: value.Raw(), Reason: "target version must be a number"}
			}

		default:
			if value.Kind() != TargetVersion {
				return nil, &ConfigError{Key: key, Value: value.Raw(), Reason: "target version must be a number"}
			}
			out[key] = value.Version()
		}
	}

	// Electron targets become chrome targets; the two must not coexist, so
	// the translation overwrites any direct chrome key.
	if value, ok := targets[keyElectron]; ok {
		raw := value.Raw()
		if value.Kind() == TargetVersion {
			raw = strconv.FormatFloat(value.Version(), 'f', -1, 64)
		}
		chrome, err := translateElectron(raw)
		if err != nil {
			return nil, err
		}
		out[keyChrome] = chrome
	}

	// Browser queries expand last. Direct environment keys take precedence
	// over query-derived ones.
	if value, ok := targets[keyBrowsers]; ok && value.Kind() == TargetQuery {
		minimums, err := c.resolveQueryMinimums(value.Queries())
		if err != nil {
			return nil, err
		}
		merged := make(CanonicalTargets, len(minimums)+len(out))
		for name, version := range minimums {
			merged[name] = version
		}
		for name, version := range out {
			merged[name] = version
		}
		out = merged
	}

	return out, nil
}

// translateElectron maps an electron version string to the Chromium version
// it embeds, keyed by the MAJOR.MINOR release series.
func translateElectron(raw string) (float64, error) {
	if raw == "1" {
		raw = "1.0"
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return 0, &MalformedVersionError{Version: raw}
	}
	key := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	chrome, ok := compatdata.ElectronToChromium[key]
	if !ok {
		return 0, &UnsupportedVersionError{Version: raw}
	}
	return chrome, nil
}

// resolveQueryMinimums resolves a browser query to the minimum surviving
// version per canonical browser name. Unrecognized browser names and
// versions without a leading number are dropped: that filtering is part of
// the contract, not an error path.
func (c *buildConfig) resolveQueryMinimums(queries []string) (map[string]float64, error) {
	if c.queryResolver == nil {
		return nil, ErrNoQueryResolver
	}

	cacheKey := strings.Join(queries, "\x00")
	if c.queryCache != nil {
		if minimums, ok := c.queryCache.Get(cacheKey); ok {
			return minimums, nil
		}
	}

	entries, err := c.queryResolver(queries)
	if err != nil {
		return nil, fmt.Errorf("resolve browser query: %w", err)
	}

	minimums := make(map[string]float64)
	for _, entry := range entries {
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			continue
		}
		name, ok := compatdata.BrowserNames[fields[0]]
		if !ok {
			continue
		}
		version, ok := leadingInt(fields[1])
		if !ok {
			continue
		}
		v := float64(version)
		if current, ok := minimums[name]; !ok || v < current {
			minimums[name] = v
		}
	}

	if c.queryCache != nil {
		c.queryCache.Add(cacheKey, minimums)
	}
	return minimums, nil
}

// leadingInt parses the integer prefix of a release version token, so
// fractional ("4.4") and ranged ("10.0-10.2") releases reduce to their major
// version. Tokens without a leading digit carry no usable version.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
