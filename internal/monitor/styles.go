package monitor

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sysmon/internal/ui"
)

// styles holds the lipgloss styles for one report. The renderer's profile is
// pinned rather than detected from the output: ANSI when color is on, Ascii
// when off, so piping the output does not change what gets written.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	r      *lipgloss.Renderer
}

func newStyles(color bool) styles {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title:  r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(ui.ColorMuted),
		r:      r,
	}
}

// percent renders a percentage value in its tier color.
func (s styles) percent(p float64, text string) string {
	return s.r.NewStyle().Foreground(ui.TierForPercentage(p).Color()).Render(text)
}
