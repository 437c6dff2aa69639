package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	log := &eventLog{}
	a := &fakePlugin{id: "a", log: log, fn: func(n int) int { return n }}
	b := &fakePlugin{id: "b", log: log, fn: func(n int) int { return n }}
	c := &fakePlugin{id: "c", log: log, fn: func(n int) int { return n }}

	r.RegisterPlugin(a)
	r.RegisterPlugin(b)
	r.RegisterPlugin(c)

	require.Equal(t, 3, r.Len())
	plugins := r.Plugins()
	assert.Same(t, a, plugins[0].(*fakePlugin))
	assert.Same(t, b, plugins[1].(*fakePlugin))
	assert.Same(t, c, plugins[2].(*fakePlugin))
}

func TestRegistryPluginsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	log := &eventLog{}
	r.RegisterPlugin(&fakePlugin{id: "a", log: log, fn: func(n int) int { return n }})

	plugins := r.Plugins()
	plugins[0] = nil
	assert.NotNil(t, r.Plugins()[0])
}

func TestRegistrySealStopsMutation(t *testing.T) {
	r := NewRegistry()
	log := &eventLog{}
	r.RegisterPlugin(&fakePlugin{id: "a", log: log, fn: func(n int) int { return n }})
	assert.False(t, r.Sealed())

	r.Seal()
	assert.True(t, r.Sealed())
	assert.Panics(t, func() {
		r.RegisterPlugin(&fakePlugin{id: "late", log: log, fn: func(n int) int { return n }})
	})
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRejectsNilObject(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.RegisterPlugin(nil) })
}
