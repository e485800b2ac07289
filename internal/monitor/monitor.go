package monitor

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// DefaultInterval is the refresh cadence when none is configured.
const DefaultInterval = 2 * time.Second

// Encoder turns a snapshot into a structured document. When set on Options
// it replaces the text report.
type Encoder interface {
	Produce(snap Snapshot) ([]byte, error)
}

// Options configures a Monitor.
type Options struct {
	Interval time.Duration
	Once     bool
	Color    bool
	Encoder  Encoder
	Logger   logger.Logger
}

// Monitor runs the refresh-render-wait loop against a Provider.
type Monitor struct {
	provider Provider
	out      io.Writer
	opts     Options

	// wait blocks for d or until ctx is done. Replaced in tests.
	wait func(ctx context.Context, d time.Duration) error
}

// New creates a Monitor that writes each cycle to out.
func New(provider Provider, out io.Writer, opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	return &Monitor{
		provider: provider,
		out:      out,
		opts:     opts,
		wait:     sleepContext,
	}
}

// Run prints cycles until ctx is cancelled, or prints one and returns in once
// mode. Cancellation is a normal exit and returns nil.
func (m *Monitor) Run(ctx context.Context) error {
	if m.opts.Once {
		return m.Cycle(ctx)
	}

	for {
		if err := m.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if !errors.IsCode(err, errors.ErrMetrics) {
				return err
			}
			m.opts.Logger.Warn("skipping refresh: %v", stderrors.Unwrap(err))
		}

		if err := m.wait(ctx, m.opts.Interval); err != nil {
			return nil
		}
	}
}

// Cycle refreshes the provider once and writes the result.
func (m *Monitor) Cycle(ctx context.Context) error {
	if err := m.provider.Refresh(ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't refresh host metrics",
			"Run with SYSMON_DEBUG=1 for more detail")
	}
	snap := m.provider.Snapshot()
	m.opts.Logger.Debug("refreshed: cpu=%.1f%% disks=%d", snap.CPUPercent, len(snap.Disks))

	if m.opts.Encoder == nil {
		return Render(m.out, snap, RenderOptions{Color: m.opts.Color})
	}

	doc, err := m.opts.Encoder.Produce(snap)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExport,
			"Couldn't encode snapshot", "")
	}
	if len(doc) == 0 || doc[len(doc)-1] != '\n' {
		doc = append(doc, '\n')
	}
	_, err = m.out.Write(doc)
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
