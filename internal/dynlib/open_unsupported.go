//go:build !linux && !darwin && !freebsd

package dynlib

import "errors"

// ErrUnsupported is returned on platforms without Go plugin support.
var ErrUnsupported = errors.New("dynlib: dynamic loading not supported on this platform")

// Open always fails; Go plugins require linux, darwin, or freebsd.
func Open(path string) (Library, error) {
	return nil, ErrUnsupported
}
