package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch converts spec once, then again after every burst of changes to the
// JSON files in spec.RawDir, until ctx is done. onRun, if set, receives each
// run's report.
func (c *Converter) Watch(ctx context.Context, spec SetSpec, debounce time.Duration, onRun func(BatchReport)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(spec.RawDir); err != nil {
		return fmt.Errorf("watching %s: %w", spec.RawDir, err)
	}

	run := func() {
		report, err := c.Run(ctx, []SetSpec{spec})
		if err != nil {
			slog.Error("watch run failed", "set", spec.String(), "err", err)
		}
		if onRun != nil {
			onRun(report)
		}
	}

	run()
	slog.Info("watching for changes", "set", spec.String(), "dir", spec.RawDir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || filepath.Ext(ev.Name) != ".json" {
				continue
			}
			slog.Debug("raw file changed", "file", ev.Name, "op", ev.Op.String())
			pending = time.After(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", "err", err)

		case <-pending:
			pending = nil
			run()
		}
	}
}
