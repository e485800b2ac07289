// Package ui holds the pure formatting layer used to render host metrics as
// terminal text.
//
// Everything here is a pure function of its inputs: no I/O, no shared state.
// The presenter in internal/monitor calls into it once per refresh.
//
// # Components Overview
//
//	CalculatePercentage - used/total as a 0-100 percentage (0 when total is 0)
//	FormatBytes         - base-1024 size with B, KB, MB, GB units
//	TierForPercentage   - Normal, Warning or Critical severity band
//	ProgressBar         - fixed-width [████    ] bar with optional ANSI color
//
// # Color Scheme
//
// Tiers map to the basic ANSI palette so output stays readable on any
// terminal, including ones without 256-color support:
//
//	TierNormal   (green)  - percent <= 75
//	TierWarning  (yellow) - 75 < percent <= 90
//	TierCritical (red)    - percent > 90
//
// # Progress Bars
//
//	ui.ProgressBar(67.5, 100, false)  // [██████████████████████████              ]
//
// Without color the bar is exactly BarWidth+2 runes. With color the fill is
// wrapped in the tier code and a reset, and the visible width is unchanged.
package ui
