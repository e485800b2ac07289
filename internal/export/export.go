// Package export serializes monitor snapshots into structured documents.
//
// Exporters are looked up by lowercase format name:
//
//	json       - indented JSON document
//	yaml       - YAML document
//	prometheus - Prometheus text exposition format
package export

import (
	"sort"
	"strings"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// Exporter turns a snapshot into a document of one format.
type Exporter interface {
	Produce(snap monitor.Snapshot) ([]byte, error)
	Name() string
	Extension() string
}

var registry = map[string]func() Exporter{
	"json":       func() Exporter { return JSON{} },
	"yaml":       func() Exporter { return YAML{} },
	"prometheus": func() Exporter { return Prometheus{} },
}

// Get returns the exporter registered under name (case-insensitive).
func Get(name string) (Exporter, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.New(errors.ErrExport,
			"Unknown output format: "+name,
			"Available formats: "+strings.Join(Available(), ", "))
	}
	return ctor(), nil
}

// Available returns the registered format names, sorted.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document is the serializable view of a snapshot shared by the JSON and
// YAML exporters.
type Document struct {
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	CPU       CPUDoc        `json:"cpu" yaml:"cpu"`
	Memory    UsageDoc      `json:"memory" yaml:"memory"`
	Swap      *UsageDoc     `json:"swap,omitempty" yaml:"swap,omitempty"`
	Disks     []DiskDocItem `json:"disks" yaml:"disks"`
}

// CPUDoc holds global CPU utilization.
type CPUDoc struct {
	Percent float64 `json:"percent" yaml:"percent"`
	Tier    string  `json:"tier" yaml:"tier"`
}

// UsageDoc is a used/total reading with derived fields.
type UsageDoc struct {
	UsedBytes  uint64  `json:"used_bytes" yaml:"used_bytes"`
	TotalBytes uint64  `json:"total_bytes" yaml:"total_bytes"`
	Percent    float64 `json:"percent" yaml:"percent"`
	Tier       string  `json:"tier" yaml:"tier"`
}

// DiskDocItem is one mounted volume.
type DiskDocItem struct {
	MountPoint string `json:"mount_point" yaml:"mount_point"`
	Device     string `json:"device,omitempty" yaml:"device,omitempty"`
	FSType     string `json:"fstype,omitempty" yaml:"fstype,omitempty"`
	UsageDoc   `yaml:",inline"`
}

// NewDocument builds the document for snap. Swap is omitted when the host
// has none, matching the text report.
func NewDocument(snap monitor.Snapshot) Document {
	doc := Document{
		Timestamp: snap.Timestamp.UTC(),
		CPU: CPUDoc{
			Percent: snap.CPUPercent,
			Tier:    tierName(snap.CPUPercent),
		},
		Memory: usageDoc(snap.Memory),
		Disks:  make([]DiskDocItem, 0, len(snap.Disks)),
	}
	if snap.HasSwap() {
		swap := usageDoc(snap.Swap)
		doc.Swap = &swap
	}
	for _, d := range snap.Disks {
		doc.Disks = append(doc.Disks, DiskDocItem{
			MountPoint: d.MountPoint,
			Device:     d.Device,
			FSType:     d.FSType,
			UsageDoc:   usageDoc(d.Reading),
		})
	}
	return doc
}

func usageDoc(r monitor.Reading) UsageDoc {
	pct := r.Percent()
	return UsageDoc{
		UsedBytes:  r.Used,
		TotalBytes: r.Total,
		Percent:    pct,
		Tier:       tierName(pct),
	}
}
