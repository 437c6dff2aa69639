// Package dynlib wraps the platform's dynamic-loading facility behind a
// small interface the host can drive and tests can fake.
//
// Platform-specific open logic is in open_supported.go and
// open_unsupported.go.
package dynlib

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// Library is an open dynamic-library mapping. The code and data of every
// capability object obtained from a library live inside its mapping, so
// a Library must stay mapped for as long as any such object can be
// invoked. There is deliberately no Close: see Arena.
type Library interface {
	// Path returns the filesystem path the library was opened from.
	Path() string
	// Lookup resolves an exported symbol by name.
	Lookup(name string) (any, error)
}

// OpenFunc opens the dynamic library at path. The production opener is
// Open from this package; tests substitute fakes.
type OpenFunc func(path string) (Library, error)

// Arena owns every Library opened during the life of the process.
// Libraries are inserted once and never removed: releasing a mapping
// while a capability object created from it still exists would leave a
// dangling reference, so the arena trades unloading for the guarantee
// that registered objects stay valid until process exit.
type Arena struct {
	open OpenFunc
	libs cmap.ConcurrentMap[string, Library]
}

// NewArena returns an Arena that opens libraries with open. A nil open
// uses the platform opener.
func NewArena(open OpenFunc) *Arena {
	if open == nil {
		open = Open
	}
	return &Arena{
		open: open,
		libs: cmap.New[Library](),
	}
}

// Acquire opens the library at path and retains it for the remainder of
// the process. Opening the same path twice returns the already-held
// mapping.
func (a *Arena) Acquire(path string) (Library, error) {
	if lib, ok := a.libs.Get(path); ok {
		return lib, nil
	}
	lib, err := a.open(path)
	if err != nil {
		return nil, fmt.Errorf("dynlib: open %s: %w", path, err)
	}
	a.libs.Set(path, lib)
	return lib, nil
}

// Held reports whether the library at path is retained by the arena.
func (a *Arena) Held(path string) bool {
	return a.libs.Has(path)
}

// Count returns the number of retained libraries.
func (a *Arena) Count() int {
	return a.libs.Count()
}
