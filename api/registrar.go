package api

// Registrar accepts capability objects offered by a plugin's entry
// function during the load phase.
type Registrar interface {
	// RegisterPlugin hands ownership of p to the host. After the call
	// returns, only the host may use the object; the plugin must not
	// retain a reference through which it mutates it. There is no
	// failure mode at this layer: registration either succeeds or the
	// host fails loudly.
	RegisterPlugin(p Plugin)
}
