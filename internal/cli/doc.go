// Package cli implements the system-monitor command-line interface.
//
// The root command samples the local host and prints a report; it has no
// required subcommands:
//
//	system-monitor                  - refresh every 2s until Ctrl+C
//	system-monitor --interval 5     - refresh every 5s
//	system-monitor --once           - print one report and exit
//	system-monitor --no-color       - plain text, no ANSI escapes
//	system-monitor version          - build information
//
// Settings that have no flag (output format, disk filters, color mode) come
// from .sysmon.yaml or SYSMON_* environment variables; see internal/config.
// Explicitly set flags win over config.
package cli
