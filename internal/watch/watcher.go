// Package watch observes the backing file for external modifications.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeCallback is called after the backing file changed on disk.
type ChangeCallback func()

// Watch starts an fsnotify watcher on the directory containing path and
// processes file change events until ctx is cancelled. It calls cb (if
// non-nil) after the backing file was created, written, replaced, or
// removed.
//
// The parent directory is watched rather than the file itself: atomic
// writes replace the file via rename, which would otherwise detach a
// watch on the old inode. Bursts of events are debounced so one save
// produces one callback.
func Watch(ctx context.Context, path string, logger *slog.Logger, cb ChangeCallback) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	name := filepath.Base(abs)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("file", abs))

	// debounceTimer coalesces event bursts from a single atomic replace.
	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	scheduleNotify := func() {
		if debounceTimer == nil {
			debounceTimer = time.NewTimer(200 * time.Millisecond)
			debounceCh = debounceTimer.C
		} else {
			debounceTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-debounceCh:
			logger.Debug("watcher: file changed", slog.String("file", abs))
			if cb != nil {
				cb()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Only events touching the backing file itself matter; the
			// directory also sees our temp files come and go.
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				scheduleNotify()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
