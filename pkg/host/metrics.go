package host

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the host's Prometheus collectors.
type Metrics struct {
	ModulesLoaded prometheus.Counter
	LoadFailures  prometheus.Counter
	Registrations prometheus.Counter
	Invocations   prometheus.Counter
	LibrariesHeld prometheus.Gauge
}

// NewMetrics creates the host collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production; tests use a fresh
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ModulesLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugin_dyn_modules_loaded_total",
			Help: "Total number of plugin modules loaded successfully.",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugin_dyn_load_failures_total",
			Help: "Total number of module load or symbol-resolution failures.",
		}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugin_dyn_registrations_total",
			Help: "Total number of capability objects registered by plugins.",
		}),
		Invocations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "plugin_dyn_invocations_total",
			Help: "Total number of capability objects driven through the contract.",
		}),
		LibrariesHeld: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "plugin_dyn_libraries_held",
			Help: "Number of dynamic-library mappings held for the life of the process.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ModulesLoaded, m.LoadFailures, m.Registrations, m.Invocations, m.LibrariesHeld)
	}
	return m
}
