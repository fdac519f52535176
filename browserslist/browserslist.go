package browserslist

import (
	"fmt"
	"strconv"
	"strings"
)

// UnknownQueryError is returned for a query that does not match any supported
// grammar rule.
type UnknownQueryError struct {
	Query string
}

func (e *UnknownQueryError) Error() string {
	return fmt.Sprintf("unknown browser query %q", e.Query)
}

// UnknownBrowserError is returned when a query names a browser absent from
// the release snapshot.
type UnknownBrowserError struct {
	Name string
}

func (e *UnknownBrowserError) Error() string {
	return fmt.Sprintf("unknown browser %q", e.Name)
}

// Releases resolves the given queries to a flat, deduplicated list of
// "name version" release strings. Queries are unioned.
func Releases(queries ...string) ([]string, error) {
	selected := make(map[string]map[string]bool)

	add := func(name, version string) {
		if selected[name] == nil {
			selected[name] = make(map[string]bool)
		}
		selected[name][version] = true
	}

	for _, q := range queries {
		if err := resolveQuery(strings.TrimSpace(q), add); err != nil {
			return nil, err
		}
	}

	var out []string
	for _, name := range browserOrder {
		versions := selected[name]
		if len(versions) == 0 {
			continue
		}
		for _, v := range releases[name] {
			if versions[v] {
				out = append(out, name+" "+v)
			}
		}
	}
	return out, nil
}

func resolveQuery(q string, add func(name, version string)) error {
	lower := strings.ToLower(q)
	if lower == "defaults" {
		lower = "last 2 versions"
	}

	fields := strings.Fields(lower)
	switch {
	case len(fields) == 3 && fields[0] == "last" && fields[2] == "versions":
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return &UnknownQueryError{Query: q}
		}
		for _, name := range browserOrder {
			lastVersions(name, n, add)
		}
		return nil

	case len(fields) == 4 && fields[0] == "last" && fields[3] == "versions":
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return &UnknownQueryError{Query: q}
		}
		name := fields[2]
		if _, ok := releases[name]; !ok {
			return &UnknownBrowserError{Name: name}
		}
		lastVersions(name, n, add)
		return nil

	case len(fields) == 3:
		return resolveComparison(q, fields[0], fields[1], fields[2], add)

	case len(fields) == 2:
		name, version := fields[0], fields[1]
		all, ok := releases[name]
		if !ok {
			return &UnknownBrowserError{Name: name}
		}
		for _, v := range all {
			if v == version {
				add(name, v)
				return nil
			}
		}
		return &UnknownQueryError{Query: q}

	default:
		return &UnknownQueryError{Query: q}
	}
}

func resolveComparison(q, name, op, bound string, add func(name, version string)) error {
	all, ok := releases[name]
	if !ok {
		return &UnknownBrowserError{Name: name}
	}
	limit, err := strconv.ParseFloat(bound, 64)
	if err != nil {
		return &UnknownQueryError{Query: q}
	}

	var match func(v float64) bool
	switch op {
	case ">=":
		match = func(v float64) bool { return v >= limit }
	case ">":
		match = func(v float64) bool { return v > limit }
	case "<=":
		match = func(v float64) bool { return v <= limit }
	case "<":
		match = func(v float64) bool { return v < limit }
	default:
		return &UnknownQueryError{Query: q}
	}

	for _, raw := range all {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if match(v) {
			add(name, raw)
		}
	}
	return nil
}

func lastVersions(name string, n int, add func(name, version string)) {
	all := releases[name]
	if n > len(all) {
		n = len(all)
	}
	for _, v := range all[len(all)-n:] {
		add(name, v)
	}
}
