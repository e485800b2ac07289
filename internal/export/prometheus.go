package export

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

const metricNamespace = "sysmon"

// diskLabels are the labels on every per-disk series.
var diskLabels = []string{"mount_point", "device", "fstype"}

// Prometheus writes the snapshot in the Prometheus text exposition format,
// suitable for the node_exporter textfile collector.
type Prometheus struct{}

func (Prometheus) Name() string      { return "prometheus" }
func (Prometheus) Extension() string { return "prom" }

// Produce implements Exporter. Each call builds a fresh registry, so the
// output only ever reflects snap.
func (Prometheus) Produce(snap monitor.Snapshot) ([]byte, error) {
	reg := prometheus.NewRegistry()

	cpuPercent := newGauge("cpu", "usage_percent", "Global CPU utilization in percent")
	memUsed := newGauge("memory", "used_bytes", "Used physical memory in bytes")
	memTotal := newGauge("memory", "total_bytes", "Total physical memory in bytes")
	swapUsed := newGauge("swap", "used_bytes", "Used swap in bytes")
	swapTotal := newGauge("swap", "total_bytes", "Total swap in bytes")
	diskUsed := newDiskGauge("used_bytes", "Used disk capacity in bytes")
	diskTotal := newDiskGauge("total_bytes", "Total disk capacity in bytes")
	diskPercent := newDiskGauge("usage_percent", "Used disk capacity in percent")

	reg.MustRegister(cpuPercent, memUsed, memTotal, swapUsed, swapTotal, diskUsed, diskTotal, diskPercent)

	cpuPercent.Set(snap.CPUPercent)
	memUsed.Set(float64(snap.Memory.Used))
	memTotal.Set(float64(snap.Memory.Total))
	swapUsed.Set(float64(snap.Swap.Used))
	swapTotal.Set(float64(snap.Swap.Total))

	for _, d := range snap.Disks {
		labels := prometheus.Labels{
			"mount_point": d.MountPoint,
			"device":      d.Device,
			"fstype":      d.FSType,
		}
		diskUsed.With(labels).Set(float64(d.Used))
		diskTotal.With(labels).Set(float64(d.Total))
		diskPercent.With(labels).Set(d.Percent())
	}

	families, err := reg.Gather()
	if err != nil {
		return nil, err
	}
	return encodeText(families)
}

func newGauge(subsystem, name, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricNamespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

func newDiskGauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricNamespace,
		Subsystem: "disk",
		Name:      name,
		Help:      help,
	}, diskLabels)
}

func encodeText(families []*dto.MetricFamily) ([]byte, error) {
	var buf bytes.Buffer
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
