package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debouncer coalesces bursts of file events into one reload. Editors and
// spreadsheet tools often write a file in several steps.
type debouncer struct {
	window  time.Duration
	timer   *time.Timer
	pending int
}

// touch records an event, starting the timer on the first one.
func (d *debouncer) touch() {
	d.pending++
	if d.timer == nil {
		d.timer = time.NewTimer(d.window)
	}
}

// fire returns the timer's channel, or nil if no timer is active.
func (d *debouncer) fire() <-chan time.Time {
	if d.timer == nil {
		return nil
	}
	return d.timer.C
}

// reset clears the timer and returns how many events were coalesced.
func (d *debouncer) reset() int {
	n := d.pending
	d.pending = 0
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return n
}

// Watch reloads the snapshot whenever the source file changes. It watches
// the parent directory so files replaced by rename are picked up. Blocks
// until ctx is cancelled.
func (p *Pipeline) Watch(ctx context.Context, window time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("pipeline watch: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(p.cfg.Path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("pipeline watch: %w", err)
	}
	slog.Info("watching source", "path", target, "debounce", window)

	d := &debouncer{window: window}
	defer d.reset()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			d.touch()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("source watcher error", "error", err)

		case <-d.fire():
			n := d.reset()
			slog.Debug("source changed", "path", target, "events", n)
			if _, err := p.Load(ctx); err != nil {
				slog.Warn("reload failed, keeping previous snapshot", "error", err)
			}
		}
	}
}
