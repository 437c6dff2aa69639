// Package api defines the public contracts shared by the plugin-dyn host
// and every loadable plugin. Both sides must be built against the same
// version of this package; see Entry for how the host verifies that.
package api

// Plugin is the capability contract a loadable module implements.
//
// The host never knows the concrete type behind this interface; it only
// drives the two operations below, in this order, once per registered
// instance. Side effects of either operation are plugin-defined and the
// host assumes no limit on them.
type Plugin interface {
	// Announce performs the plugin's side-effecting operation, such as
	// emitting output identifying itself.
	Announce()
	// Compute applies the plugin's transformation to input and returns
	// the result. It must be safe to call any number of times.
	Compute(input int) int
}
