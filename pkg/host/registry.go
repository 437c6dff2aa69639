package host

import (
	"sync"

	"github.com/srediag/plugin-dyn/api"
)

// Registry is the host-side collector of capability objects. It is
// mutable only during the load phase; Seal marks the end of that phase,
// after which the sequence is read-only. Insertion order is
// registration order: module load order outer, registration-call order
// within a module inner.
type Registry struct {
	mu      sync.Mutex
	sealed  bool
	plugins []api.Plugin
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterPlugin appends p to the sequence, taking ownership of it for
// the remaining lifetime of the process. It panics if called after Seal
// or with a nil object: a plugin holding a stale registrar reference or
// registering nil must fail loudly, not corrupt the sequence.
func (r *Registry) RegisterPlugin(p api.Plugin) {
	if p == nil {
		panic("host: RegisterPlugin called with nil capability object")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		panic("host: RegisterPlugin called after the load phase ended")
	}
	r.plugins = append(r.plugins, p)
}

// Seal ends the load phase. Further registrations panic.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the load phase has ended.
func (r *Registry) Sealed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sealed
}

// Len returns the number of registered capability objects.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.plugins)
}

// Plugins returns the registered objects in registration order. The
// returned slice is a copy; the objects themselves are shared.
func (r *Registry) Plugins() []api.Plugin {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]api.Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}
