package host

import (
	"errors"
	"fmt"
)

// ErrRegistryOpen is returned by Invoke when the load phase has not
// finished.
var ErrRegistryOpen = errors.New("host: invocation attempted before the registry was sealed")

// OpenError reports that a module path could not be opened as a dynamic
// library.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("host: open module %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// SymbolError reports that an opened module does not export the entry
// symbol.
type SymbolError struct {
	Path   string
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("host: module %s: resolve symbol %q: %v", e.Path, e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// ContractError reports that a module exports the entry symbol but was
// built against a different contract version than the host.
type ContractError struct {
	Path string
	Got  uint32
	Want uint32
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("host: module %s: contract version %d, host expects %d", e.Path, e.Got, e.Want)
}

// EntryTypeError reports that the entry symbol has a shape the host
// does not recognize at all.
type EntryTypeError struct {
	Path string
	Got  string
}

func (e *EntryTypeError) Error() string {
	return fmt.Sprintf("host: module %s: entry symbol has unexpected type %s", e.Path, e.Got)
}
