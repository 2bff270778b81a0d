package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/promptmap/internal/core/ports/driven"
	"github.com/custodia-labs/promptmap/internal/logger"
)

// WatchPrompts reloads store whenever a template file in dir changes.
// It blocks until ctx is done and returns nil on cancellation. dir is
// created if missing so edits made before the first Load are seen.
func WatchPrompts(ctx context.Context, dir string, store driven.PromptStore) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create prompt dir: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create prompt watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("prompts: watching %s", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if promptChanged(ev) {
				logger.Info("prompts: %s changed, reloading", filepath.Base(ev.Name))
				store.Reload()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("prompts: watcher error: %v", err)
		}
	}
}

// promptChanged reports whether ev touches a template file's content.
// Permission changes are ignored.
func promptChanged(ev fsnotify.Event) bool {
	if filepath.Ext(ev.Name) != promptExt {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
