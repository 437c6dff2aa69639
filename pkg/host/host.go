package host

import (
	"context"
	"fmt"

	queuepkg "github.com/Workiva/go-datastructures/queue"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/srediag/plugin-dyn/api"
	"github.com/srediag/plugin-dyn/internal/dynlib"
)

// LoadState is the per-path load progress. States only advance; a path
// that fails stays in the last state it reached and the run halts.
type LoadState int

const (
	StateUnopened LoadState = iota
	StateOpened
	StateSymbolResolved
	StateRegistered
)

func (s LoadState) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpened:
		return "opened"
	case StateSymbolResolved:
		return "symbol-resolved"
	case StateRegistered:
		return "registered"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// PathState records how far a module path got through the load phase
// and how many capability objects it contributed.
type PathState struct {
	Path       string
	State      LoadState
	Registered int
}

// Options configures a Host. The zero value is usable: it logs with the
// standard logrus logger, opens libraries with the platform loader, and
// keeps metrics in unregistered collectors. Pass
// NewMetrics(prometheus.DefaultRegisterer) to expose them.
type Options struct {
	Logger  *logrus.Logger
	Opener  dynlib.OpenFunc
	Metrics *Metrics
	// Meter and Tracer are optional OpenTelemetry hooks; both are
	// no-ops when nil.
	Meter  metric.Meter
	Tracer trace.Tracer
}

// Host orchestrates module loading, registration collection, and
// invocation.
type Host struct {
	log      *logrus.Logger
	arena    *dynlib.Arena
	registry *Registry
	metrics  *Metrics
	tracer   trace.Tracer

	invocations metric.Int64Counter

	states []*PathState
}

// New returns a Host ready to load modules.
func New(opts Options) *Host {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	m := opts.Metrics
	if m == nil {
		m = NewMetrics(nil)
	}
	h := &Host{
		log:      log,
		arena:    dynlib.NewArena(opts.Opener),
		registry: NewRegistry(),
		metrics:  m,
		tracer:   opts.Tracer,
	}
	if opts.Meter != nil {
		c, err := opts.Meter.Int64Counter("plugin_dyn.invocations")
		if err == nil {
			h.invocations = c
		}
	}
	return h
}

// Registry returns the host's capability-object collection.
func (h *Host) Registry() *Registry {
	return h.registry
}

// States returns a snapshot of every path's load progress, in load
// order.
func (h *Host) States() []PathState {
	out := make([]PathState, len(h.states))
	for i, st := range h.states {
		out[i] = *st
	}
	return out
}

// LoadAll runs the load phase: each path, in order, is opened, its
// entry symbol resolved and invoked, and its registrations collected.
// The first failure aborts the run with no partial-success mode; on
// success the registry is sealed and the host is ready to invoke.
func (h *Host) LoadAll(ctx context.Context, paths ...string) error {
	pending := queuepkg.New(int64(len(paths)))
	defer pending.Dispose()
	for _, p := range paths {
		if err := pending.Put(p); err != nil {
			return fmt.Errorf("host: queue module path: %w", err)
		}
	}
	for !pending.Empty() {
		items, err := pending.Get(1)
		if err != nil {
			return fmt.Errorf("host: dequeue module path: %w", err)
		}
		path := items[0].(string)
		if err := h.loadOne(ctx, path); err != nil {
			h.metrics.LoadFailures.Inc()
			h.log.WithError(err).WithField("path", path).Error("module load failed, aborting run")
			return err
		}
	}
	h.registry.Seal()
	h.log.WithFields(logrus.Fields{
		"modules": len(paths),
		"plugins": h.registry.Len(),
	}).Info("load phase complete")
	return nil
}

func (h *Host) loadOne(ctx context.Context, path string) error {
	if h.tracer != nil {
		_, span := h.tracer.Start(ctx, "host.loadOne")
		defer span.End()
	}

	st := &PathState{Path: path, State: StateUnopened}
	h.states = append(h.states, st)

	lib, err := h.arena.Acquire(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	st.State = StateOpened
	h.metrics.LibrariesHeld.Set(float64(h.arena.Count()))

	sym, err := lib.Lookup(api.EntrySymbol)
	if err != nil {
		return &SymbolError{Path: path, Symbol: api.EntrySymbol, Err: err}
	}
	st.State = StateSymbolResolved

	before := h.registry.Len()
	if err := h.dispatchEntry(path, sym); err != nil {
		return err
	}
	st.State = StateRegistered
	st.Registered = h.registry.Len() - before

	h.metrics.ModulesLoaded.Inc()
	h.metrics.Registrations.Add(float64(st.Registered))
	h.log.WithFields(logrus.Fields{
		"path":       path,
		"registered": st.Registered,
	}).Info("module loaded")
	return nil
}

// dispatchEntry invokes the module's entry with the host's registrar.
// A versioned Entry is checked before its register function runs; a
// bare entry function is accepted as-is. Anything else is a detected
// contract violation, not undefined behavior.
func (h *Host) dispatchEntry(path string, sym any) error {
	switch e := sym.(type) {
	case *api.Entry:
		if e.ContractVersion != api.ContractVersion {
			return &ContractError{Path: path, Got: e.ContractVersion, Want: api.ContractVersion}
		}
		if e.Register == nil {
			return &EntryTypeError{Path: path, Got: "api.Entry with nil Register"}
		}
		e.Register(h.registry)
	case api.Entry:
		if e.ContractVersion != api.ContractVersion {
			return &ContractError{Path: path, Got: e.ContractVersion, Want: api.ContractVersion}
		}
		if e.Register == nil {
			return &EntryTypeError{Path: path, Got: "api.Entry with nil Register"}
		}
		e.Register(h.registry)
	case api.EntryFunc:
		e(h.registry)
	case *api.EntryFunc:
		(*e)(h.registry)
	case func(api.Registrar):
		e(h.registry)
	default:
		return &EntryTypeError{Path: path, Got: fmt.Sprintf("%T", sym)}
	}
	return nil
}

// InvokeResult is the outcome of driving one capability object through
// the contract once.
type InvokeResult struct {
	Index  int
	Input  int
	Output int
}

// Invoke runs the invocation phase: every registered object, in
// registration order, has Announce called and then Compute applied to
// input. It fails if the load phase has not finished; it never mutates
// the registry.
func (h *Host) Invoke(ctx context.Context, input int) ([]InvokeResult, error) {
	if !h.registry.Sealed() {
		return nil, ErrRegistryOpen
	}
	if h.tracer != nil {
		var span trace.Span
		ctx, span = h.tracer.Start(ctx, "host.Invoke")
		defer span.End()
	}

	plugins := h.registry.Plugins()
	results := make([]InvokeResult, 0, len(plugins))
	for i, p := range plugins {
		p.Announce()
		out := p.Compute(input)
		h.metrics.Invocations.Inc()
		if h.invocations != nil {
			h.invocations.Add(ctx, 1)
		}
		results = append(results, InvokeResult{Index: i, Input: input, Output: out})
	}
	return results, nil
}
