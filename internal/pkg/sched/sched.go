// internal/pkg/sched/sched.go
package sched

import (
	"sync"
	"time"
)

// Task is a delayed action that can be cancelled deterministically.
// Screens use it for post-success redirects: teardown cancels the task
// so a navigation scheduled before unmount never fires after it.
type Task struct {
	mu        sync.Mutex
	timer     *time.Timer
	cancelled bool
	fired     bool
}

// After schedules fn to run once after d. The callback is skipped, not
// merely detached, when Cancel wins the race.
func After(d time.Duration, fn func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.cancelled {
			t.mu.Unlock()
			return
		}
		t.fired = true
		t.mu.Unlock()
		fn()
	})
	return t
}

// Cancel stops the task. Safe to call multiple times and after firing.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.cancelled = true
	timer := t.timer
	t.mu.Unlock()
	if timer != nil {
		timer.Stop()
	}
}

// Fired reports whether the callback ran.
func (t *Task) Fired() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fired
}

// Pending reports whether the task is still waiting to fire.
func (t *Task) Pending() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.fired && !t.cancelled
}
