package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestThrottleDropsBursts(t *testing.T) {
	th := newThrottle(time.Hour)
	if !th.ready() {
		t.Fatalf("first event must pass")
	}
	if th.ready() {
		t.Fatalf("second event inside the interval must be dropped")
	}
}

func TestThrottleDisabledPassesEverything(t *testing.T) {
	th := newThrottle(0)
	for i := 0; i < 3; i++ {
		if !th.ready() {
			t.Fatalf("disabled throttle dropped event %d", i)
		}
	}
	var nilThrottle *throttle
	if !nilThrottle.ready() {
		t.Fatalf("nil throttle must pass events")
	}
}

func TestWatcherReportsConfigWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("watcher start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte(`{"directories":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected event error: %v", evt.Err)
		}
		if evt.Path != path {
			t.Fatalf("expected event for %s, got %s", path, evt.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for a change event")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("watcher start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event for a sibling file: %#v", evt)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, 0)
	if err != nil {
		t.Fatalf("watcher start failed: %v", err)
	}
	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected a closed channel after Stop")
		}
	case <-time.After(time.Second):
		t.Fatalf("events channel did not close")
	}
}
