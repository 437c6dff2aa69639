package api

// EntrySymbol is the name of the single exported symbol every loadable
// module must provide. Its name and shape are the entire wire contract
// between host and plugin; neither side may change them independently.
const EntrySymbol = "PluginEntry"

// ContractVersion identifies the layout of the contracts in this
// package. The host refuses modules whose Entry carries a different
// value, turning a silent interface mismatch into a load-phase error.
// Bump on any change to Plugin, Registrar, or Entry.
const ContractVersion uint32 = 1

// EntryFunc is the registration callback a module exposes through its
// Entry. It receives the host's registrar and registers zero or more
// capability objects against it.
type EntryFunc func(r Registrar)

// Entry is the value a module exports under EntrySymbol:
//
//	var PluginEntry = api.Entry{
//		ContractVersion: api.ContractVersion,
//		Register: func(r api.Registrar) {
//			r.RegisterPlugin(&myPlugin{})
//		},
//	}
//
// The version field is checked before Register is ever called.
type Entry struct {
	ContractVersion uint32
	Register        EntryFunc
}
