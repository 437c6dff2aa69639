package host

import (
	"errors"

	"github.com/heptiolabs/healthcheck"
)

// NewHealthHandler returns liveness and readiness probes for h.
// Liveness is unconditional plus a goroutine-leak guard; readiness
// flips once the load phase completes and the registry is sealed.
func NewHealthHandler(h *Host) healthcheck.Handler {
	hh := healthcheck.NewHandler()
	hh.AddLivenessCheck("goroutine-count", healthcheck.GoroutineCountCheck(500))
	hh.AddReadinessCheck("load-phase-complete", func() error {
		if !h.Registry().Sealed() {
			return errors.New("load phase in progress")
		}
		return nil
	})
	return hh
}
