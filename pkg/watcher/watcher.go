package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/gowellarc/internal/logging"
)

// FileWatcher watches files for changes and triggers callbacks.
// It watches the parent directories, so editors that save by replacing
// the file are noticed too.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    logging.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]bool
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger logging.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = logging.Noop()
	}

	return &FileWatcher{
		watcher:   watcher,
		logger:    logger,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]bool),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for changes of the given files
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !fw.dirs[dir] {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = true
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.handleFileChange(ctx, event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn(ctx, "watcher error", logging.Any("error", err))
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(ctx context.Context, filePath string) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[absPath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
	}

	fw.logger.Debug(ctx, "file changed", logging.String("path", absPath))
	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		callback(absPath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
