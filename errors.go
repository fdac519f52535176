package gopresetenv

import (
	"errors"
	"fmt"
)

// Sentinel errors for common resolution failures.
var (
	// ErrRuntimeVersionUnavailable indicates the current runtime version was
	// requested (node: true / "current") but could not be detected.
	ErrRuntimeVersionUnavailable = errors.New("runtime version unavailable")

	// ErrNoQueryResolver indicates a browsers query was supplied but no
	// query resolver is configured.
	ErrNoQueryResolver = errors.New("no browser query resolver configured")
)

// ConfigError indicates an invalid option or target value supplied by the
// caller, such as a string where a numeric version is required.
type ConfigError struct {
	// Key is the option or target key that failed validation.
	Key string

	// Value is the offending value.
	Value any

	// Reason describes what was expected.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %q: %s (got %v)", e.Key, e.Reason, e.Value)
}

// UnsupportedVersionError indicates an Electron version with no Chromium
// translation entry: the release is older or newer than the table covers.
type UnsupportedVersionError struct {
	// Version is the Electron version as supplied.
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("electron version %s is not supported", e.Version)
}

// MalformedVersionError indicates a version string without a leading
// major.minor numeric shape.
type MalformedVersionError struct {
	// Version is the version string as supplied.
	Version string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version %q: expected major.minor", e.Version)
}

// UnknownPluginError indicates a capability name with no registered
// implementation, typically a typo in an include/exclude list.
type UnknownPluginError struct {
	// Name is the unresolved capability name.
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unknown plugin or built-in %q", e.Name)
}
