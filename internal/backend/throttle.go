package backend

import (
	"sync"
	"time"
)

// throttle drops events that arrive within the configured interval of the
// last accepted one.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// ready reports whether enough time has passed to accept another event and,
// if so, starts a new interval.
func (t *throttle) ready() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := time.Now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
