package monitor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Provider is the source of host metrics. Refresh is called once per cycle
// before Snapshot.
type Provider interface {
	Refresh(ctx context.Context) error
	Snapshot() Snapshot
}

// firstCPUSample is the measurement window for the very first CPU reading.
// Later readings use a zero window, which gopsutil measures against the
// previous call.
const firstCPUSample = 200 * time.Millisecond

// DiskFilter controls which mounted volumes are reported.
type DiskFilter struct {
	// All includes pseudo and virtual filesystems (tmpfs, proc, ...).
	All bool
	// Exclude hides mount points starting with any of these prefixes.
	Exclude []string
}

func (f DiskFilter) excluded(mountPoint string) bool {
	for _, prefix := range f.Exclude {
		if prefix != "" && strings.HasPrefix(mountPoint, prefix) {
			return true
		}
	}
	return false
}

// hostSource is the set of gopsutil calls HostProvider makes. Swapped out in
// tests so the provider can run without a real host.
type hostSource struct {
	cpuPercent  func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
	virtualMem  func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	swapMem     func(ctx context.Context) (*mem.SwapMemoryStat, error)
	partitions  func(ctx context.Context, all bool) ([]disk.PartitionStat, error)
	usage       func(ctx context.Context, path string) (*disk.UsageStat, error)
	currentTime func() time.Time
}

func gopsutilSource() hostSource {
	return hostSource{
		cpuPercent:  cpu.PercentWithContext,
		virtualMem:  mem.VirtualMemoryWithContext,
		swapMem:     mem.SwapMemoryWithContext,
		partitions:  disk.PartitionsWithContext,
		usage:       disk.UsageWithContext,
		currentTime: time.Now,
	}
}

// HostProvider reads metrics for the local machine through gopsutil.
// The handle is refreshed in place; Snapshot returns a copy.
type HostProvider struct {
	src     hostSource
	filter  DiskFilter
	log     logger.Logger
	sampled bool

	mu   sync.Mutex
	snap Snapshot
}

// NewHostProvider creates a provider for the local host.
func NewHostProvider(filter DiskFilter, log logger.Logger) *HostProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &HostProvider{
		src:    gopsutilSource(),
		filter: filter,
		log:    log,
	}
}

// Refresh replaces the current snapshot with fresh readings.
// CPU, memory and the partition list are required; swap and per-disk usage
// failures are logged and leave those readings out.
func (p *HostProvider) Refresh(ctx context.Context) error {
	window := time.Duration(0)
	if !p.sampled {
		window = firstCPUSample
	}
	cpuPercents, err := p.src.cpuPercent(ctx, window, false)
	if err != nil {
		return err
	}
	p.sampled = true

	vm, err := p.src.virtualMem(ctx)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Timestamp: p.src.currentTime(),
		Memory:    Reading{Used: vm.Used, Total: vm.Total},
	}
	if len(cpuPercents) > 0 {
		snap.CPUPercent = cpuPercents[0]
	}

	if sw, err := p.src.swapMem(ctx); err != nil {
		p.log.Debug("swap stats unavailable: %v", err)
	} else {
		snap.Swap = Reading{Used: sw.Used, Total: sw.Total}
	}

	disks, err := p.collectDisks(ctx)
	if err != nil {
		return err
	}
	snap.Disks = disks

	p.mu.Lock()
	p.snap = snap
	p.mu.Unlock()
	return nil
}

func (p *HostProvider) collectDisks(ctx context.Context) ([]DiskUsage, error) {
	partitions, err := p.src.partitions(ctx, p.filter.All)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	disks := make([]DiskUsage, 0, len(partitions))
	for _, part := range partitions {
		if p.filter.excluded(part.Mountpoint) {
			continue
		}
		// Bind mounts show the same device more than once.
		if part.Device != "" && part.Device != "none" && seen[part.Device] {
			continue
		}

		usage, err := p.src.usage(ctx, part.Mountpoint)
		if err != nil {
			p.log.Debug("skipping %s: %v", part.Mountpoint, err)
			continue
		}
		if usage.Total == 0 {
			continue
		}
		seen[part.Device] = true

		var used uint64
		if usage.Free < usage.Total {
			used = usage.Total - usage.Free
		}
		disks = append(disks, DiskUsage{
			MountPoint: part.Mountpoint,
			Device:     part.Device,
			FSType:     part.Fstype,
			Reading:    Reading{Used: used, Total: usage.Total},
		})
	}
	return disks, nil
}

// Snapshot returns the readings from the last successful Refresh.
func (p *HostProvider) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := p.snap
	snap.Disks = append([]DiskUsage(nil), p.snap.Disks...)
	return snap
}
