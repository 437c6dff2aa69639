package host

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats summarizes the host process after the load phase.
// Library mappings are never released, so resident-set growth across
// loads is the observable cost of the retention policy.
type ProcessStats struct {
	RSSBytes      uint64
	LibrariesHeld int
	PluginsHeld   int
}

// Stats reports the current process footprint alongside the number of
// mappings and capability objects the host holds.
func (h *Host) Stats() (ProcessStats, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return ProcessStats{}, fmt.Errorf("host: inspect process: %w", err)
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		return ProcessStats{}, fmt.Errorf("host: read memory info: %w", err)
	}
	return ProcessStats{
		RSSBytes:      mem.RSS,
		LibrariesHeld: h.arena.Count(),
		PluginsHeld:   h.registry.Len(),
	}, nil
}
