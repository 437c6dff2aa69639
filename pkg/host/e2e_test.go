//go:build linux || darwin || freebsd

package host

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEndToEndWithBuiltPlugins loads real shared objects built from the
// example plugins. Building -buildmode=plugin artifacts requires cgo
// and host/plugin build flags to agree with the test binary's, so the
// test only runs when explicitly requested:
//
//	PLUGIN_DYN_E2E=1 go test ./pkg/host -run EndToEnd
func TestEndToEndWithBuiltPlugins(t *testing.T) {
	if os.Getenv("PLUGIN_DYN_E2E") == "" {
		t.Skip("set PLUGIN_DYN_E2E=1 to run the end-to-end plugin test")
	}

	dir := t.TempDir()
	addone := filepath.Join(dir, "addone.so")
	shout := filepath.Join(dir, "shout.so")
	buildPlugin(t, "../../examples/plugins/addone", addone)
	buildPlugin(t, "../../examples/plugins/shout", shout)

	h := New(Options{Logger: silentLogger(), Metrics: NewMetrics(nil)})
	require.NoError(t, h.LoadAll(context.Background(), addone, shout))
	require.Equal(t, 3, h.Registry().Len())

	results, err := h.Invoke(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 8, results[0].Output)
	require.Equal(t, 14, results[1].Output)
	require.Equal(t, -7, results[2].Output)
}

func buildPlugin(t *testing.T, pkg, out string) {
	t.Helper()
	cmd := exec.Command("go", "build", "-buildmode=plugin", "-o", out, pkg)
	cmd.Env = os.Environ()
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build %s: %v\n%s", pkg, err, output)
	}
}
