package gopresetenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-presetenv/compatdata"
)

func TestDefaultRegistry_KnowsAllCapabilityNames(t *testing.T) {
	r := DefaultRegistry()

	for _, name := range compatdata.PluginNames {
		assert.True(t, r.Known(name), "plugin %s", name)
	}
	for _, name := range compatdata.BuiltInNames {
		assert.True(t, r.Known(name), "built-in %s", name)
	}
	for _, name := range compatdata.DefaultInclude {
		assert.True(t, r.Known(name), "default include %s", name)
	}
	for _, name := range compatdata.ModuleTransforms {
		assert.True(t, r.Known(name), "module transform %s", name)
	}
	assert.True(t, r.Known(PolyfillUnitName))
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("transform-es2015-classes")
	var unknownErr *UnknownPluginError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "transform-es2015-classes", unknownErr.Name)

	impl := struct{ tag string }{tag: "classes"}
	r.Register("transform-es2015-classes", impl)

	handle, err := r.Lookup("transform-es2015-classes")
	require.NoError(t, err)
	assert.Equal(t, "transform-es2015-classes", handle.Name)
	assert.Equal(t, impl, handle.Impl)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 1)
	r.Register("x", 2)

	handle, err := r.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, 2, handle.Impl)
}
