// Package images watches the note image directory for external changes so
// connected clients can refresh attachment thumbnails.
package images

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called after a change in the image directory.
// kind is one of "added", "removed".
type EventCallback func(kind, filename string)

var watchedExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// Watch starts an fsnotify watcher on the image directory and processes
// file change events until ctx is cancelled. The directory is flat; files
// synced into it from outside the process (or removed) surface as callback
// events. The directory is created if missing.
func Watch(ctx context.Context, dir string, logger *slog.Logger, cb EventCallback) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	logger.Info("image watcher: started", slog.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			logger.Info("image watcher: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			name := filepath.Base(ev.Name)
			if _, ok := watchedExts[strings.ToLower(filepath.Ext(name))]; !ok {
				continue
			}

			switch {
			case ev.Op&fsnotify.Create != 0:
				logger.Debug("image watcher: added", slog.String("file", name))
				if cb != nil {
					cb("added", name)
				}

			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				// Rename fires on the old path; a survivor inside the
				// directory arrives as its own Create event.
				logger.Debug("image watcher: removed", slog.String("file", name))
				if cb != nil {
					cb("removed", name)
				}
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("image watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
