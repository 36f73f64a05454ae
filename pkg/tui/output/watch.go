package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"k8s.io/utils/clock"
)

// MinWatchInterval is the minimum allowed watch interval to prevent excessive CPU usage.
const MinWatchInterval = 100 * time.Millisecond

// ErrWatchRunning is returned when a WatchRunner is started twice.
var ErrWatchRunning = errors.New("watch already running")

// WatchOptions configures watch mode behavior
type WatchOptions struct {
	// Interval is the refresh interval
	Interval time.Duration

	// Format is the output format
	Format Format

	// FetchFunc fetches the data
	FetchFunc func(ctx context.Context) (*Data, error)

	// Writer is where to write output
	Writer io.Writer

	// Command is shown in the header, like watch(1)
	Command string

	// Clock drives the refresh ticker; nil means the real clock
	Clock clock.WithTicker
}

func (o WatchOptions) validate() error {
	switch {
	case o.Interval <= 0:
		return fmt.Errorf("watch interval must be positive, got %v", o.Interval)
	case o.Interval < MinWatchInterval:
		return fmt.Errorf("watch interval must be at least %v, got %v", MinWatchInterval, o.Interval)
	}
	return nil
}

// watcher is one run of the refresh loop.
type watcher struct {
	opts     WatchOptions
	terminal bool
}

// RunWatch renders once, then again on every tick until ctx is cancelled.
// A failing first fetch ends the watch; later failures are printed and the
// loop carries on.
func RunWatch(ctx context.Context, opts WatchOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}

	w := &watcher{opts: opts, terminal: isTerminal(opts.Writer)}
	if err := w.refresh(ctx); err != nil {
		return err
	}

	ticker := opts.Clock.NewTicker(opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if w.terminal {
				// leave the prompt on a fresh line
				_, _ = fmt.Fprintln(opts.Writer)
			}
			return nil
		case <-ticker.C():
			if err := w.refresh(ctx); err != nil {
				_, _ = fmt.Fprintf(opts.Writer, "\nError: %v\n", err)
			}
		}
	}
}

// refresh clears the screen, prints the header and renders fresh data.
func (w *watcher) refresh(ctx context.Context) error {
	out := w.opts.Writer
	if w.terminal {
		_, _ = fmt.Fprint(out, "\033[H\033[2J")
	}
	_, _ = fmt.Fprint(out, watchHeader(w.opts.Interval, w.opts.Command, w.opts.Clock.Now()))

	data, err := w.opts.FetchFunc(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch data: %w", err)
	}
	if err := Render(out, data, w.opts.Format); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

// watchHeader formats "Every 2.0s: pocketpay account    Sun Jan 4 12:00:00 2026".
func watchHeader(interval time.Duration, command string, now time.Time) string {
	return fmt.Sprintf("Every %.1fs: %s    %s\n\n",
		interval.Seconds(), command, now.Format("Mon Jan 2 15:04:05 2006"))
}

// WatchRunner guards a watch loop against being started twice.
type WatchRunner struct {
	opts    WatchOptions
	running atomic.Bool
}

// NewWatchRunner creates a new watch runner
func NewWatchRunner(opts WatchOptions) *WatchRunner {
	return &WatchRunner{opts: opts}
}

// Run starts the watch loop, or returns ErrWatchRunning.
func (wr *WatchRunner) Run(ctx context.Context) error {
	if !wr.running.CompareAndSwap(false, true) {
		return ErrWatchRunning
	}
	defer wr.running.Store(false)

	return RunWatch(ctx, wr.opts)
}

// IsRunning reports whether the loop is running.
func (wr *WatchRunner) IsRunning() bool {
	return wr.running.Load()
}
