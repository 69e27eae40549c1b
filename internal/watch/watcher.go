// Package watch reloads configuration while the browser is running.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"ghbrowse/internal/log"
)

// ConfigWatcher watches a config file and invokes onChange after writes.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func()
}

// NewConfigWatcher creates a watcher for the given config file.
func NewConfigWatcher(filePath string, onChange func()) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the specific file
	if err := watcher.Add(filePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	// Also watch the directory for file recreation events
	dir := filepath.Dir(filePath)
	if err := watcher.Add(dir); err != nil {
		// Non-fatal: some editors recreate files
		log.Warn("couldn't watch config directory", slog.String("dir", dir), slog.String("error", err.Error()))
	}

	return &ConfigWatcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
	}, nil
}

// Start blocks until ctx is cancelled, firing onChange 100ms after the last
// write to the watched file so editor save bursts coalesce into one reload.
func (cw *ConfigWatcher) Start(ctx context.Context) {
	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			// Check if the event is for our file
			if filepath.Clean(event.Name) == filepath.Clean(cw.filePath) {
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if debounceTimer != nil {
						debounceTimer.Stop()
					}

					debounceTimer = time.AfterFunc(debounceDelay, cw.onChange)
				}
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("config watcher error", slog.String("error", err.Error()))
		}
	}
}

// Close stops the underlying filesystem watcher.
func (cw *ConfigWatcher) Close() error {
	return cw.watcher.Close()
}
