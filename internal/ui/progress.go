package ui

import "strings"

// BarWidth is the number of fill cells in a progress bar.
const BarWidth = 40

// Progress bar block characters.
const (
	progressFilled = "█"
	progressEmpty  = " "
)

// ProgressBar renders current/max as a BarWidth-cell bar.
// Output format: [████████                                ]
// See ProgressBarWidth for the edge-case rules.
func ProgressBar(current, max float64, useColor bool) string {
	return ProgressBarWidth(current, max, useColor, BarWidth)
}

// ProgressBarWidth renders current/max as a bar with width fill cells.
// The ratio is normalized to a percentage once and that value drives both the
// fill and the color tier. max <= 0 counts as 0%, and the percentage is
// clamped to 0-100, so the visible width is always width+2.
// With useColor the fill is wrapped in the tier color and a reset; the reset
// is written even when nothing is filled.
func ProgressBarWidth(current, max float64, useColor bool, width int) string {
	if width < 1 {
		width = 1
	}

	percent := 0.0
	if max > 0 {
		percent = current / max * 100.0
	}
	percent = clampPercent(percent)

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	var sb strings.Builder
	sb.Grow(width*len(progressFilled) + 16)

	sb.WriteByte('[')
	if useColor {
		sb.WriteString(ColorForPercentage(percent))
	}
	sb.WriteString(strings.Repeat(progressFilled, filled))
	if useColor {
		sb.WriteString(ResetCode)
	}
	sb.WriteString(strings.Repeat(progressEmpty, empty))
	sb.WriteByte(']')

	return sb.String()
}
