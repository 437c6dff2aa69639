package host

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPlugin tracks concurrent Compute calls without the shared
// event log, which is not safe under the stress pool.
type countingPlugin struct {
	calls int64
}

func (p *countingPlugin) Announce() {}

func (p *countingPlugin) Compute(input int) int {
	atomic.AddInt64(&p.calls, 1)
	return input + 1
}

func TestStressComputeRunsAllIterations(t *testing.T) {
	p := &countingPlugin{}
	res, err := StressCompute(p, 7, 200, 4)
	require.NoError(t, err)
	assert.Equal(t, 200, res.Iterations)
	assert.Equal(t, int64(0), res.Mismatches)
	assert.Equal(t, 8, res.Expected)
	// 200 pooled calls plus the reference call.
	assert.Equal(t, int64(201), atomic.LoadInt64(&p.calls))
}

func TestStressComputeDetectsUnstableResults(t *testing.T) {
	n := int64(0)
	unstable := &funcPlugin{fn: func(input int) int {
		return int(atomic.AddInt64(&n, 1))
	}}
	res, err := StressCompute(unstable, 7, 50, 4)
	require.NoError(t, err)
	assert.Greater(t, res.Mismatches, int64(0))
}

func TestStressComputeRejectsBadArguments(t *testing.T) {
	_, err := StressCompute(nil, 7, 10, 2)
	assert.Error(t, err)
	_, err = StressCompute(&countingPlugin{}, 7, 0, 2)
	assert.Error(t, err)
	_, err = StressCompute(&countingPlugin{}, 7, 10, 0)
	assert.Error(t, err)
}

type funcPlugin struct {
	fn func(int) int
}

func (p *funcPlugin) Announce() {}

func (p *funcPlugin) Compute(input int) int { return p.fn(input) }
