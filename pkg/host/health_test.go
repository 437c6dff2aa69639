package host

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srediag/plugin-dyn/api"
)

func TestHealthReadinessFollowsLoadPhase(t *testing.T) {
	log := &eventLog{}
	libs := map[string]*fakeLib{
		"a.so": {path: "a.so", syms: map[string]any{
			api.EntrySymbol: entryRegistering(log, func(n int) int { return n + 1 }, "a1"),
		}},
	}
	h := New(Options{Logger: silentLogger(), Opener: fakeOpener(libs), Metrics: NewMetrics(nil)})
	hh := NewHealthHandler(h)

	require.Equal(t, http.StatusOK, probe(hh.LiveEndpoint, "/live"))
	require.Equal(t, http.StatusServiceUnavailable, probe(hh.ReadyEndpoint, "/ready"))

	require.NoError(t, h.LoadAll(context.Background(), "a.so"))

	require.Equal(t, http.StatusOK, probe(hh.LiveEndpoint, "/live"))
	require.Equal(t, http.StatusOK, probe(hh.ReadyEndpoint, "/ready"))
}

func probe(endpoint http.HandlerFunc, path string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	endpoint(rec, req)
	return rec.Code
}
