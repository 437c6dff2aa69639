// Package discovery expands a plugin directory into an ordered list of
// loadable module paths. Ordering is lexical by file name so that a
// directory scan always yields the same load order.
package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ModuleSuffix is the file suffix of a loadable module.
const ModuleSuffix = ".so"

// Scan lists the loadable modules directly inside dir, sorted by name.
// A directory with no modules yields an empty, non-nil slice.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discovery: read %s: %w", dir, err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ModuleSuffix) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// WaitScan scans dir until it exists and contains at least one module,
// retrying with bounded exponential backoff. It is meant for hosts that
// start before their plugins are deployed; the load phase itself never
// retries.
func WaitScan(ctx context.Context, dir string, maxWait time.Duration) ([]string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = maxWait

	var paths []string
	op := func() error {
		found, err := Scan(dir)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("discovery: no modules in %s yet", dir)
		}
		paths = found
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return paths, nil
}
