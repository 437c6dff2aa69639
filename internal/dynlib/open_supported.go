//go:build linux || darwin || freebsd

package dynlib

import (
	"plugin"
)

// goLibrary adapts a stdlib plugin handle to Library. The plugin package
// provides no unload operation, which matches the arena's retention
// policy exactly. plugin.Open itself rejects modules built against
// different versions of any shared package, so a stale contract package
// already fails here instead of at call time.
type goLibrary struct {
	path string
	p    *plugin.Plugin
}

// Open maps the shared object at path into the process.
func Open(path string) (Library, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &goLibrary{path: path, p: p}, nil
}

func (l *goLibrary) Path() string { return l.path }

func (l *goLibrary) Lookup(name string) (any, error) {
	sym, err := l.p.Lookup(name)
	if err != nil {
		return nil, err
	}
	return sym, nil
}
