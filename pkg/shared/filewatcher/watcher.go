// Package filewatcher notifies listeners when a single file changes on disk.
package filewatcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Path      string    // Path to the changed file
	Timestamp time.Time // Time of the change
	Error     error     // Error reported by the underlying watcher, if any
}

// ChangeListener is an interface for receiving file change notifications
type ChangeListener interface {
	OnFileChange(event ChangeEvent)
}

// ListenerFunc adapts a plain function to ChangeListener.
type ListenerFunc func(event ChangeEvent)

// OnFileChange calls f(event).
func (f ListenerFunc) OnFileChange(event ChangeEvent) { f(event) }

// ErrClosed is returned by Start when the watcher was closed underneath it.
var ErrClosed = errors.New("filewatcher: watcher closed")

// Watcher monitors one file and notifies listeners once per burst of
// changes. The parent directory is watched so that editors which save by
// renaming a temporary file over the original keep being observed.
type Watcher struct {
	watcher       *fsnotify.Watcher
	listeners     []ChangeListener
	filePath      string
	debounceDelay time.Duration
	mu            sync.RWMutex
}

// NewWatcher creates a new file watcher with the specified debounce delay
func NewWatcher(filePath string, debounceDelay time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &Watcher{
		watcher:       fsWatcher,
		filePath:      absPath,
		debounceDelay: debounceDelay,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.filePath }

// AddListener adds a listener to receive file change notifications
func (w *Watcher) AddListener(listener ChangeListener) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, listener)
}

// Start watches until ctx is done or the watcher is closed.
// It blocks and should typically be run in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	schedule := func() {
		timerMu.Lock()
		defer timerMu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounceDelay, func() {
			w.notifyListeners(ChangeEvent{Path: w.filePath, Timestamp: time.Now()})
		})
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return ErrClosed
			}
			if !w.relevant(event) {
				continue
			}
			schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return ErrClosed
			}
			w.notifyListeners(ChangeEvent{
				Path:      w.filePath,
				Timestamp: time.Now(),
				Error:     err,
			})
		}
	}
}

// relevant reports whether event touches the watched file in a way that
// may have changed its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	eventPath, err := filepath.Abs(event.Name)
	if err != nil || eventPath != w.filePath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops the watcher and releases resources
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// notifyListeners sends the event to all registered listeners
func (w *Watcher) notifyListeners(event ChangeEvent) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, listener := range w.listeners {
		go listener.OnFileChange(event)
	}
}
