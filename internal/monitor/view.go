package monitor

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/ui"
)

// Section labels in the text report.
const (
	TitleText  = "=== SYSTEM MONITOR ==="
	CPULabel   = "CPU Usage:"
	MemLabel   = "Memory:"
	SwapLabel  = "Swap:"
	DisksLabel = "Disk Usage:"
	PromptText = "Press Ctrl+C to exit..."
)

// RenderOptions controls the text report.
type RenderOptions struct {
	// Color enables ANSI styling, colored bars and the clear-screen prefix.
	Color bool
}

// Render writes the text report for snap to w.
func Render(w io.Writer, snap Snapshot, opts RenderOptions) error {
	_, err := io.WriteString(w, RenderString(snap, opts))
	return err
}

// RenderString builds the text report.
func RenderString(snap Snapshot, opts RenderOptions) string {
	st := newStyles(opts.Color)
	var b strings.Builder

	if opts.Color {
		b.WriteString(ui.ClearScreen)
	}

	b.WriteString(st.title.Render(TitleText))
	b.WriteString("\n\n")

	// CPU
	cpuText := fmt.Sprintf("%.1f%%", snap.CPUPercent)
	fmt.Fprintf(&b, "%s %s\n", st.header.Render(CPULabel), st.percent(snap.CPUPercent, cpuText))
	writeBar(&b, snap.CPUPercent, opts.Color)
	b.WriteString("\n")

	// Memory
	writeReading(&b, st, MemLabel, snap.Memory)
	writeBar(&b, snap.Memory.Percent(), opts.Color)

	// Swap is left out entirely on hosts without any.
	if snap.HasSwap() {
		writeReading(&b, st, SwapLabel, snap.Swap)
		writeBar(&b, snap.Swap.Percent(), opts.Color)
	}
	b.WriteString("\n")

	// Disks
	b.WriteString(st.header.Render(DisksLabel))
	b.WriteString("\n")
	for _, d := range snap.Disks {
		writeReading(&b, st, "  "+d.MountPoint+":", d.Reading)
		writeBar(&b, d.Percent(), opts.Color)
	}

	b.WriteString("\n")
	b.WriteString(st.muted.Render(PromptText))
	b.WriteString("\n")

	return b.String()
}

// writeReading writes "<label> 45.6% (7.1 GB / 15.6 GB)".
func writeReading(b *strings.Builder, st styles, label string, r Reading) {
	pct := r.Percent()
	pctText := fmt.Sprintf("%.1f%%", pct)
	fmt.Fprintf(b, "%s %s (%s / %s)\n",
		st.header.Render(label),
		st.percent(pct, pctText),
		ui.FormatBytes(r.Used),
		ui.FormatBytes(r.Total),
	)
}

func writeBar(b *strings.Builder, percent float64, color bool) {
	b.WriteString(ui.ProgressBar(percent, 100, color))
	b.WriteString("\n")
}
