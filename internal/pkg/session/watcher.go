// internal/pkg/session/watcher.go
package session

import (
	"sync"
	"time"
)

// Watcher re-reads the store on a fixed interval and on explicit Notify
// calls, mirroring the web client's storage-event listener plus its 5s
// poll. Both triggers feed the same idempotent refresh: OnChange fires
// only when the loaded snapshot differs from the last one seen, so firing
// both in quick succession is harmless.
type Watcher struct {
	store    Store
	interval time.Duration
	onChange func(Session)

	mu      sync.Mutex
	last    Session
	seeded  bool
	stopped bool
	done    chan struct{}
	kick    chan struct{}
}

func NewWatcher(store Store, interval time.Duration, onChange func(Session)) *Watcher {
	return &Watcher{
		store:    store,
		interval: interval,
		onChange: onChange,
		done:     make(chan struct{}),
		kick:     make(chan struct{}, 1),
	}
}

// Start seeds the snapshot with the current store contents (firing
// OnChange once with whatever is there) and begins polling.
func (w *Watcher) Start() {
	w.Refresh()
	go w.loop()
}

func (w *Watcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			w.Refresh()
		case <-w.kick:
			w.Refresh()
		}
	}
}

// Notify requests an immediate re-check, used after a local Save or Clear.
func (w *Watcher) Notify() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Stop halts polling and suppresses any further OnChange calls.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.done)
	w.mu.Unlock()
}

// Refresh loads the store and invokes OnChange when the snapshot differs
// from the last one delivered. Safe to call from any trigger.
func (w *Watcher) Refresh() {
	current := w.store.Load()

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	changed := !w.seeded || current != w.last
	w.last = current
	w.seeded = true
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange(current)
	}
}
