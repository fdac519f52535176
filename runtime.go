package gopresetenv

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// detectRuntimeVersion reports the version of the node runtime on PATH.
// It is the default source for node: true / "current" targets; hosts that
// know the version (or run without node installed) inject it with
// WithRuntimeVersion.
func detectRuntimeVersion() (float64, error) {
	out, err := exec.Command("node", "--version").Output()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRuntimeVersionUnavailable, err)
	}
	return parseRuntimeVersion(strings.TrimSpace(string(out)))
}

// parseRuntimeVersion converts a reported version like "v18.17.1" to its
// major.minor floating-point form (18.17).
func parseRuntimeVersion(s string) (float64, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot parse %q", ErrRuntimeVersionUnavailable, s)
	}
	return strconv.ParseFloat(fmt.Sprintf("%d.%d", v.Major(), v.Minor()), 64)
}
