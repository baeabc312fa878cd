// Package backend watches the on-disk configuration for changes made by
// other processes (an editor, a sync tool) and publishes change events the
// UI consumes one at a time.
package backend

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event signals that the configuration file changed, or that watching it
// failed.
type Event struct {
	Path string
	Err  error
}

// Watcher observes the configuration file through fsnotify. Writes are
// debounced so an editor saving in several syscalls yields one event.
type Watcher struct {
	path string

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the directory containing path. Watching the
// directory rather than the file keeps events flowing across atomic
// rename-replace saves.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:   path,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.run(fsw, debounce)

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns the channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The events channel closes once the watch
// goroutine has drained.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run(fsw *fsnotify.Watcher, debounce time.Duration) {
	defer w.wg.Done()
	defer fsw.Close()

	throttle := newThrottle(debounce)
	emit := func(evt Event) bool {
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case fsEvent, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(fsEvent.Name) != filepath.Clean(w.path) {
				continue
			}
			if fsEvent.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !throttle.ready() {
				continue
			}
			if !emit(Event{Path: w.path}) {
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			if !emit(Event{Path: w.path, Err: err}) {
				return
			}
		}
	}
}
