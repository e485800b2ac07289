package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/export"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/spf13/cobra"
)

// Seams for tests: where config comes from and what provides metrics.
var (
	loadConfig  = config.LoadOrDefault
	newProvider = func(cfg *config.Config, log logger.Logger) monitor.Provider {
		return monitor.NewHostProvider(monitor.DiskFilter{
			All:     cfg.Disks.All,
			Exclude: cfg.Disks.Exclude,
		}, log)
	}
)

// monitorCommand resolves config and flags, then runs the refresh loop until
// it finishes (once mode) or the process is interrupted.
func monitorCommand(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, flags, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	log := logger.NewWriterLogger(cmd.ErrOrStderr(), "[monitor]")

	opts := monitor.Options{
		Interval: cfg.IntervalDuration(),
		Once:     flags.Once,
		Color:    config.UseColor(cfg.Color, out),
		Logger:   log,
	}
	if cfg.Format != config.FormatText {
		exp, err := export.Get(cfg.Format)
		if err != nil {
			return err
		}
		opts.Encoder = exp
	}
	log.Debug("interval=%s format=%s color=%v once=%v", opts.Interval, cfg.Format, opts.Color, opts.Once)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return monitor.New(newProvider(cfg, log), out, opts).Run(ctx)
}
