package host

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/srediag/plugin-dyn/api"
)

// StressResult is the outcome of a stress run against one capability
// object.
type StressResult struct {
	Iterations int
	Mismatches int64
	Expected   int
}

// StressCompute soaks a single capability object's pure operation:
// Compute(input) is called iterations times from a pool of workers and
// every result is compared against an initial reference call. This is
// an opt-in harness for validating a plugin build; it requires the
// plugin's Compute to be safe for concurrent use and is separate from
// the sequential invocation phase.
func StressCompute(p api.Plugin, input, iterations, workers int) (StressResult, error) {
	if p == nil {
		return StressResult{}, fmt.Errorf("host: stress: nil capability object")
	}
	if iterations < 1 || workers < 1 {
		return StressResult{}, fmt.Errorf("host: stress: iterations and workers must be >= 1")
	}

	expected := p.Compute(input)

	pool, err := ants.NewPool(workers)
	if err != nil {
		return StressResult{}, fmt.Errorf("host: stress: create pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var mismatches int64
	for i := 0; i < iterations; i++ {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if p.Compute(input) != expected {
				atomic.AddInt64(&mismatches, 1)
			}
		}); err != nil {
			wg.Done()
			return StressResult{}, fmt.Errorf("host: stress: submit task: %w", err)
		}
	}
	wg.Wait()

	return StressResult{
		Iterations: iterations,
		Mismatches: atomic.LoadInt64(&mismatches),
		Expected:   expected,
	}, nil
}
