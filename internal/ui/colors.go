package ui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tier is a severity band derived from a usage percentage.
type Tier int

const (
	TierNormal Tier = iota
	TierWarning
	TierCritical
)

// Tier boundaries. Both are exclusive: exactly 75% is still Normal and
// exactly 90% is still Warning.
const (
	WarningThreshold  = 75.0
	CriticalThreshold = 90.0
)

// Raw ANSI sequences used inside progress bars. These are written verbatim
// rather than through a lipgloss renderer so the bytes are the same whether
// or not stdout is a terminal.
var (
	ResetCode   = sgr(termenv.ResetSeq)
	ClearScreen = termenv.CSI + "2J" + termenv.CSI + "H"
)

// Semantic colors for styled (non-bar) text, basic ANSI palette.
const (
	ColorNormal   lipgloss.Color = "2" // Green
	ColorWarning  lipgloss.Color = "3" // Yellow
	ColorCritical lipgloss.Color = "1" // Red
	ColorMuted    lipgloss.Color = "8" // Gray (bright black)
)

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}

// TierForPercentage maps a percentage to its severity tier.
// NaN falls through to Normal.
func TierForPercentage(percent float64) Tier {
	switch {
	case percent > CriticalThreshold:
		return TierCritical
	case percent > WarningThreshold:
		return TierWarning
	default:
		return TierNormal
	}
}

// ColorForPercentage returns the ANSI foreground escape for the tier of percent.
func ColorForPercentage(percent float64) string {
	return TierForPercentage(percent).Code()
}

// Code returns the ANSI foreground escape sequence for the tier.
func (t Tier) Code() string {
	return sgr(t.ansiColor().Sequence(false))
}

// Color returns the lipgloss color for the tier.
func (t Tier) Color() lipgloss.Color {
	switch t {
	case TierCritical:
		return ColorCritical
	case TierWarning:
		return ColorWarning
	default:
		return ColorNormal
	}
}

func (t Tier) ansiColor() termenv.ANSIColor {
	switch t {
	case TierCritical:
		return termenv.ANSIRed
	case TierWarning:
		return termenv.ANSIYellow
	default:
		return termenv.ANSIGreen
	}
}

func (t Tier) String() string {
	switch t {
	case TierCritical:
		return "critical"
	case TierWarning:
		return "warning"
	default:
		return "normal"
	}
}

// clampPercent pins percent to [0, 100]; NaN becomes 0.
func clampPercent(percent float64) float64 {
	if math.IsNaN(percent) || percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
