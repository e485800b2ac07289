package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const gib = 1024 * 1024 * 1024

func testSnapshot() monitor.Snapshot {
	return monitor.Snapshot{
		Timestamp:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		CPUPercent: 80,
		Memory:     monitor.Reading{Used: 4 * gib, Total: 8 * gib},
		Swap:       monitor.Reading{Used: gib, Total: 4 * gib},
		Disks: []monitor.DiskUsage{
			{MountPoint: "/", Device: "/dev/sda1", FSType: "ext4", Reading: monitor.Reading{Used: 95 * gib, Total: 100 * gib}},
		},
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantName string
		wantExt  string
	}{
		{"json", "json", "json", "json"},
		{"uppercase", "JSON", "json", "json"},
		{"padded", " yaml ", "yaml", "yaml"},
		{"prometheus", "Prometheus", "prometheus", "prom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := Get(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, exp.Name())
			assert.Equal(t, tt.wantExt, exp.Extension())
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	exp, err := Get("xml")
	assert.Nil(t, exp)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExport))
	assert.Contains(t, err.Error(), "json, prometheus, yaml")
}

func TestAvailable(t *testing.T) {
	assert.Equal(t, []string{"json", "prometheus", "yaml"}, Available())
}

func TestAvailableFormatsAllResolve(t *testing.T) {
	for _, name := range Available() {
		exp, err := Get(name)
		require.NoError(t, err, name)
		out, err := exp.Produce(testSnapshot())
		require.NoError(t, err, name)
		assert.NotEmpty(t, out, name)
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(testSnapshot())

	assert.Equal(t, 80.0, doc.CPU.Percent)
	assert.Equal(t, "warning", doc.CPU.Tier)
	assert.Equal(t, 50.0, doc.Memory.Percent)
	assert.Equal(t, "normal", doc.Memory.Tier)
	require.NotNil(t, doc.Swap)
	assert.Equal(t, 25.0, doc.Swap.Percent)
	require.Len(t, doc.Disks, 1)
	assert.Equal(t, "critical", doc.Disks[0].Tier)
	assert.Equal(t, 95.0, doc.Disks[0].Percent)
}

func TestNewDocument_NoSwapNoDisks(t *testing.T) {
	snap := testSnapshot()
	snap.Swap = monitor.Reading{}
	snap.Disks = nil

	doc := NewDocument(snap)
	assert.Nil(t, doc.Swap)
	assert.NotNil(t, doc.Disks, "disks encode as an empty list, not null")
	assert.Empty(t, doc.Disks)
}

func TestJSON_Produce(t *testing.T) {
	out, err := JSON{}.Produce(testSnapshot())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(out), "\n"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, "2026-01-02T03:04:05Z", decoded["timestamp"])
	mem := decoded["memory"].(map[string]interface{})
	assert.Equal(t, float64(8*gib), mem["total_bytes"])

	disks := decoded["disks"].([]interface{})
	require.Len(t, disks, 1)
	root := disks[0].(map[string]interface{})
	assert.Equal(t, "/", root["mount_point"])
	assert.Equal(t, float64(95*gib), root["used_bytes"], "usage fields are flattened into the disk object")
}

func TestJSON_OmitsSwap(t *testing.T) {
	snap := testSnapshot()
	snap.Swap = monitor.Reading{}

	out, err := JSON{}.Produce(snap)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"swap"`)
}

func TestYAML_Produce(t *testing.T) {
	out, err := YAML{}.Produce(testSnapshot())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "---\n"))

	var decoded struct {
		CPU struct {
			Percent float64 `yaml:"percent"`
			Tier    string  `yaml:"tier"`
		} `yaml:"cpu"`
		Disks []struct {
			MountPoint string `yaml:"mount_point"`
			UsedBytes  uint64 `yaml:"used_bytes"`
		} `yaml:"disks"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, 80.0, decoded.CPU.Percent)
	assert.Equal(t, "warning", decoded.CPU.Tier)
	require.Len(t, decoded.Disks, 1)
	assert.Equal(t, "/", decoded.Disks[0].MountPoint)
	assert.Equal(t, uint64(95*gib), decoded.Disks[0].UsedBytes)
}

func TestPrometheus_Produce(t *testing.T) {
	out, err := Prometheus{}.Produce(testSnapshot())
	require.NoError(t, err)
	text := string(out)

	assert.Contains(t, text, "# HELP sysmon_cpu_usage_percent Global CPU utilization in percent")
	assert.Contains(t, text, "# TYPE sysmon_cpu_usage_percent gauge")
	assert.Contains(t, text, "sysmon_cpu_usage_percent 80\n")
	assert.Contains(t, text, "sysmon_memory_total_bytes 8.589934592e+09\n")
	assert.Contains(t, text, `sysmon_disk_usage_percent{device="/dev/sda1",fstype="ext4",mount_point="/"} 95`)
}

func TestPrometheus_FreshRegistryPerCall(t *testing.T) {
	first, err := Prometheus{}.Produce(testSnapshot())
	require.NoError(t, err)

	snap := testSnapshot()
	snap.Disks = []monitor.DiskUsage{
		{MountPoint: "/data", Device: "/dev/sdb1", FSType: "xfs", Reading: monitor.Reading{Used: 1, Total: 2}},
	}
	second, err := Prometheus{}.Produce(snap)
	require.NoError(t, err)

	assert.Contains(t, string(first), `mount_point="/"`)
	assert.NotContains(t, string(second), `mount_point="/"}`)
	assert.Contains(t, string(second), `mount_point="/data"`)
}
