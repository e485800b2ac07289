// Package monitor samples local host metrics and prints them to a terminal.
//
// # Key Components
//
//	Provider      - source of Snapshots, refreshed once per cycle
//	HostProvider  - Provider backed by gopsutil (CPU, memory, swap, disks)
//	Monitor       - the polling loop: refresh, render, wait, repeat
//	Render        - turns a Snapshot into the text report
//
// # Cycle
//
// Each cycle is synchronous and stateless:
//
//  1. Provider.Refresh pulls fresh readings from the OS
//  2. Provider.Snapshot hands back an immutable copy
//  3. The snapshot is rendered as text (or encoded by an Encoder)
//  4. Monitor waits for the interval or for ctx to be cancelled
//
// A refresh failure in continuous mode is logged and the cycle is skipped;
// the next tick retries. In once mode it is returned to the caller.
package monitor
