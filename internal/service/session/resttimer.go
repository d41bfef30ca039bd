package session

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// RestTimer is the advisory countdown between completed sets. It never blocks
// set manipulation; collaborators poll Remaining/Running or get the notify
// callback when the countdown hits zero.
type RestTimer struct {
	clock  clockwork.Clock
	grace  time.Duration
	notify func()

	mu        sync.Mutex
	remaining time.Duration
	running   bool
	elapsed   bool
	cancel    chan struct{}
}

// NewRestTimer creates a stopped timer. notify may be nil; it fires from the
// timer's own goroutine when the countdown reaches zero. The elapsed flag
// auto-clears after the grace window.
func NewRestTimer(clock clockwork.Clock, grace time.Duration, notify func()) *RestTimer {
	return &RestTimer{
		clock:  clock,
		grace:  grace,
		notify: notify,
	}
}

// Start begins (or restarts) a countdown of d, ticking once per second.
func (t *RestTimer) Start(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	if d <= 0 {
		return
	}

	t.remaining = d
	t.running = true
	t.elapsed = false
	t.cancel = make(chan struct{})

	go t.run(t.cancel)
}

func (t *RestTimer) run(cancel <-chan struct{}) {
	ticker := t.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.Chan():
			if done := t.tick(); done {
				if t.notify != nil {
					t.notify()
				}
				t.clearAfterGrace(cancel)
				return
			}
		}
	}
}

// tick decrements the countdown and reports whether it reached zero.
func (t *RestTimer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.remaining -= time.Second
	if t.remaining > 0 {
		return false
	}

	t.remaining = 0
	t.running = false
	t.elapsed = true
	return true
}

func (t *RestTimer) clearAfterGrace(cancel <-chan struct{}) {
	select {
	case <-cancel:
	case <-t.clock.After(t.grace):
	}

	t.mu.Lock()
	t.elapsed = false
	t.mu.Unlock()
}

// Skip aborts the countdown without firing the notify callback.
func (t *RestTimer) Skip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Stop tears the timer down when the session ends.
func (t *RestTimer) Stop() {
	t.Skip()
}

func (t *RestTimer) stopLocked() {
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
	t.remaining = 0
	t.running = false
	t.elapsed = false
}

// Remaining returns the time left on the countdown.
func (t *RestTimer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether a countdown is in progress.
func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Elapsed reports whether the countdown recently hit zero. The flag clears
// after the grace window, so overlay collaborators know when to dismiss.
func (t *RestTimer) Elapsed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}
