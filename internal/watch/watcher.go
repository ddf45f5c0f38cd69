// Package watch provides file system watching for the auto-convert
// mode: TSV files created or modified under the input directory are
// debounced and handed to a convert callback.
package watch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventOp represents the type of file system operation.
type EventOp int

const (
	// OpCreate indicates a new file was created.
	OpCreate EventOp = iota
	// OpModify indicates an existing file was modified.
	OpModify
	// OpDelete indicates a file was deleted.
	OpDelete
)

// String returns a human-readable representation of the operation.
func (op EventOp) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpModify:
		return "modify"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// FileEvent represents a file system event for a TSV file.
type FileEvent struct {
	// Path is the path to the file that changed.
	Path string
	// Op is the operation that occurred.
	Op EventOp
}

// FileWatcher watches the input directory for TSV file changes. It
// uses fsnotify for cross-platform file system event monitoring.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileEvent
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewFileWatcher creates a new FileWatcher instance. The watcher must
// be started with Start() before it will emit events.
func NewFileWatcher() (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &FileWatcher{
		watcher: watcher,
		events:  make(chan FileEvent, 100),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the input directory for *.tsv events.
func (fw *FileWatcher) Start(inputDir string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.running {
		return fmt.Errorf("watcher already running")
	}

	if err := fw.watcher.Add(inputDir); err != nil {
		return fmt.Errorf("failed to watch input directory %s: %w", inputDir, err)
	}

	fw.running = true
	fw.wg.Add(1)
	go fw.processEvents()

	return nil
}

// Stop stops watching and cleans up resources. It blocks until the
// event processing goroutine has exited.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if !fw.running {
		fw.mu.Unlock()
		return nil
	}
	fw.running = false
	fw.mu.Unlock()

	close(fw.done)

	if err := fw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	fw.wg.Wait()

	close(fw.events)
	close(fw.errors)

	return nil
}

// Events returns the channel that emits FileEvent notifications.
// This channel is closed when the watcher is stopped.
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Errors returns the channel that emits error notifications.
// This channel is closed when the watcher is stopped.
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

// IsRunning reports whether the watcher is active.
func (fw *FileWatcher) IsRunning() bool {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.running
}

func (fw *FileWatcher) processEvents() {
	defer fw.wg.Done()

	for {
		select {
		case <-fw.done:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if fileEvent, ok := fw.convertEvent(event); ok {
				select {
				case fw.events <- fileEvent:
				case <-fw.done:
					return
				}
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case fw.errors <- err:
			case <-fw.done:
				return
			}
		}
	}
}

// convertEvent converts an fsnotify event to a FileEvent. Returns
// false for events that should be ignored.
func (fw *FileWatcher) convertEvent(event fsnotify.Event) (FileEvent, bool) {
	if !strings.HasSuffix(strings.ToLower(event.Name), ".tsv") {
		return FileEvent{}, false
	}

	var op EventOp
	switch {
	case event.Has(fsnotify.Create):
		op = OpCreate
	case event.Has(fsnotify.Write):
		op = OpModify
	case event.Has(fsnotify.Remove):
		op = OpDelete
	case event.Has(fsnotify.Rename):
		// Treat rename as delete (the new name will trigger a create)
		op = OpDelete
	default:
		// Ignore chmod and other events
		return FileEvent{}, false
	}

	return FileEvent{Path: event.Name, Op: op}, true
}

// Run watches inputDir until ctx is cancelled, batching rapid create
// and modify events per file and invoking convert once a file has
// been quiet for the debounce interval. Convert errors are reported
// through onError and do not stop the watch loop.
func Run(ctx context.Context, inputDir string, debounce time.Duration, convert func(path string) error, onError func(error)) error {
	fw, err := NewFileWatcher()
	if err != nil {
		return err
	}
	defer fw.Stop()

	if err := fw.Start(inputDir); err != nil {
		return err
	}

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events():
			if !ok {
				return nil
			}
			if event.Op == OpDelete {
				delete(pending, event.Path)
				continue
			}
			pending[event.Path] = time.Now()

		case err, ok := <-fw.Errors():
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < debounce {
					continue
				}
				delete(pending, path)
				if err := convert(path); err != nil && onError != nil {
					onError(err)
				}
			}
		}
	}
}
