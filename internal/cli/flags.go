package cli

import (
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/spf13/cobra"
)

// rootFlags holds the flags on the root command.
type rootFlags struct {
	Interval int
	Once     bool
	NoColor  bool
}

// addRootFlags registers --interval, --once and --no-color.
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	def := config.DefaultConfig()
	cmd.Flags().IntVarP(&flags.Interval, "interval", "i", def.Interval, "refresh interval in seconds")
	cmd.Flags().BoolVarP(&flags.Once, "once", "o", false, "print a single sample and exit")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "disable ANSI colors and screen clearing")
}

// applyFlags layers explicitly set flags over the loaded config.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	if cmd.Flags().Changed("interval") {
		cfg.Interval = flags.Interval
	}
	if flags.NoColor {
		cfg.Color = config.ColorNever
	}
}
