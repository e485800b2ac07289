// Package testing provides test doubles for the monitor package.
package testing

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// FakeProvider serves canned snapshots. Each Refresh advances to the next
// snapshot in Snapshots; the last one repeats once the list is exhausted.
type FakeProvider struct {
	mu sync.Mutex

	// Configuration
	Snapshots []monitor.Snapshot
	// Errors, if set, is consulted per Refresh call (by index); a nil entry
	// or an index past the end means success.
	Errors []error
	// OnRefresh runs after every Refresh with the 1-based call count.
	OnRefresh func(n int)

	// Call tracking
	RefreshCalls int

	current monitor.Snapshot
}

// NewFakeProvider creates a provider that serves the given snapshots in order.
func NewFakeProvider(snaps ...monitor.Snapshot) *FakeProvider {
	return &FakeProvider{Snapshots: snaps}
}

// Refresh implements monitor.Provider.
func (f *FakeProvider) Refresh(ctx context.Context) error {
	f.mu.Lock()
	f.RefreshCalls++
	n := f.RefreshCalls
	var err error
	if n-1 < len(f.Errors) {
		err = f.Errors[n-1]
	}
	if err == nil && len(f.Snapshots) > 0 {
		idx := n - 1
		if idx >= len(f.Snapshots) {
			idx = len(f.Snapshots) - 1
		}
		f.current = f.Snapshots[idx]
	}
	hook := f.OnRefresh
	f.mu.Unlock()

	if hook != nil {
		hook(n)
	}
	return err
}

// Snapshot implements monitor.Provider.
func (f *FakeProvider) Snapshot() monitor.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Calls returns how many times Refresh was called.
func (f *FakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.RefreshCalls
}

// SampleSnapshot returns a realistic snapshot for rendering tests: 16 GB of
// RAM half used, 2 GB of swap, and two disks.
func SampleSnapshot() monitor.Snapshot {
	const gb = 1024 * 1024 * 1024
	return monitor.Snapshot{
		Timestamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		CPUPercent: 12.5,
		Memory:     monitor.Reading{Used: 8 * gb, Total: 16 * gb},
		Swap:       monitor.Reading{Used: 512 * 1024 * 1024, Total: 2 * gb},
		Disks: []monitor.DiskUsage{
			{MountPoint: "/", Device: "/dev/sda1", FSType: "ext4", Reading: monitor.Reading{Used: 190 * gb, Total: 200 * gb}},
			{MountPoint: "/data", Device: "/dev/sdb1", FSType: "xfs", Reading: monitor.Reading{Used: 100 * gb, Total: 400 * gb}},
		},
	}
}
