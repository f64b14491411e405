package portfolio

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fjanphilip/folio/internal/debounce"
	"github.com/fsnotify/fsnotify"
)

var ErrWatch = errors.New("failed to watch portfolio")

// Watch calls onChange with the reloaded content every time the file at path changes, until ctx
// is cancelled. Bursts of changes within window result in a single reload. Content that fails to
// load is passed to onError instead.
func Watch(ctx context.Context, path string, window time.Duration, onChange func(Portfolio), onError func(error)) error {
	watcher, errWatcher := fsnotify.NewWatcher()
	if errWatcher != nil {
		return errors.Join(errWatcher, ErrWatch)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("Failed to close portfolio watcher", slog.String("error", err.Error()))
		}
	}()

	// Editors commonly replace the file rather than writing to it, so watch the directory.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Join(err, ErrWatch)
	}

	debouncer := debounce.New(window)
	defer debouncer.Cancel()

	reload := func() {
		content, err := Load(target)
		if err != nil {
			onError(err)

			return
		}

		onChange(content)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				slog.Debug("Portfolio changed", slog.String("path", target), slog.String("op", event.Op.String()))
				debouncer.Trigger(reload)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("Portfolio watcher error", slog.String("error", err.Error()))
		}
	}
}
