// Package host loads dynamic plugin modules, collects the capability
// objects they register, and drives every collected object through the
// capability contract.
//
// The load phase is sequential and fail-fast: modules are opened one at
// a time in the order given, the entry symbol is resolved and invoked,
// and the first open or resolve failure aborts the whole run before any
// capability object is invoked. After the last module loads, the
// registry is sealed and the invocation phase iterates it in
// registration order.
//
// Library mappings are owned by a process-lifetime arena and never
// released; see internal/dynlib.
package host
