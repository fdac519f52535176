package gopresetenv

import (
	"sync"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

// PluginHandle ties a capability name to an implementation registered by the
// host. The implementation is opaque to this library; the host instantiates
// it when applying the preset.
type PluginHandle struct {
	// Name is the capability name.
	Name string

	// Impl is the host-registered implementation, if any.
	Impl any
}

// Registry maps capability names to registered implementation handles.
// Resolving a selected name through the registry replaces dynamic
// load-by-constructed-name: an unknown name is a defined UnknownPluginError
// instead of a load failure.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]PluginHandle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]PluginHandle)}
}

// DefaultRegistry creates a registry pre-populated with every name in the
// compatibility tables, the module transforms, and the polyfill-requirement
// unit. Handles carry no implementation until the host registers one.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, name := range compatdata.PluginNames {
		r.Register(name, nil)
	}
	for _, name := range compatdata.BuiltInNames {
		r.Register(name, nil)
	}
	for _, name := range compatdata.DefaultInclude {
		r.Register(name, nil)
	}
	for _, name := range compatdata.ModuleTransforms {
		r.Register(name, nil)
	}
	r.Register(PolyfillUnitName, nil)
	return r
}

// Register adds or replaces the handle for a capability name.
func (r *Registry) Register(name string, impl any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles[name] = PluginHandle{Name: name, Impl: impl}
}

// Lookup resolves a capability name to its handle.
func (r *Registry) Lookup(name string) (PluginHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, ok := r.handles[name]
	if !ok {
		return PluginHandle{}, &UnknownPluginError{Name: name}
	}
	return handle, nil
}

// Known reports whether a capability name is registered.
func (r *Registry) Known(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handles[name]
	return ok
}
