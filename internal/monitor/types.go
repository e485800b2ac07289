package monitor

import (
	"time"

	"github.com/rileyhilliard/sysmon/internal/ui"
)

// Snapshot is one complete set of readings taken at a single refresh.
type Snapshot struct {
	Timestamp  time.Time
	CPUPercent float64
	Memory     Reading
	Swap       Reading
	Disks      []DiskUsage
}

// Reading is a used/total pair, in bytes for everything this package reports.
type Reading struct {
	Used  uint64
	Total uint64
}

// Percent returns Used as a percentage of Total (0 when Total is 0).
func (r Reading) Percent() float64 {
	return ui.CalculatePercentage(r.Used, r.Total)
}

// DiskUsage is the capacity reading for one mounted volume.
type DiskUsage struct {
	MountPoint string
	Device     string
	FSType     string
	Reading
}

// HasSwap reports whether the host has any swap configured.
func (s Snapshot) HasSwap() bool {
	return s.Swap.Total > 0
}
