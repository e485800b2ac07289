package config

import "time"

// Color modes for the `color` key.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// FormatText is the built-in human-readable report. Every other format name
// refers to an exporter.
const FormatText = "text"

// Config represents a .sysmon.yaml file merged with defaults and
// SYSMON_* environment overrides.
type Config struct {
	// Interval is the number of seconds between refreshes.
	Interval int `yaml:"interval" mapstructure:"interval"`

	// Color mode: "always", "auto", or "never".
	// "auto" disables color when stdout is not a terminal or NO_COLOR is set.
	Color string `yaml:"color" mapstructure:"color"`

	// Format is "text" or the name of a registered exporter (json, yaml, prometheus).
	Format string `yaml:"format" mapstructure:"format"`

	Disks DiskConfig `yaml:"disks" mapstructure:"disks"`
}

// DiskConfig controls which volumes appear in the disk section.
type DiskConfig struct {
	// All includes pseudo filesystems such as tmpfs and proc.
	All bool `yaml:"all" mapstructure:"all"`

	// Exclude hides mount points starting with any of these prefixes.
	Exclude []string `yaml:"exclude" mapstructure:"exclude"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval: 2,
		Color:    ColorAlways,
		Format:   FormatText,
		Disks: DiskConfig{
			Exclude: []string{},
		},
	}
}

// IntervalDuration returns Interval as a time.Duration.
func (c *Config) IntervalDuration() time.Duration {
	return time.Duration(c.Interval) * time.Second
}
