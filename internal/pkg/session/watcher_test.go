package session

import (
	"sync"
	"testing"
	"time"
)

type memStore struct {
	mu sync.Mutex
	s  Session
}

func (m *memStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *memStore) Load() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{}
	return nil
}

func TestWatcherFiresOnlyOnChange(t *testing.T) {
	store := &memStore{}
	var fired []Session
	w := NewWatcher(store, time.Hour, func(s Session) {
		fired = append(fired, s)
	})

	// Initial refresh delivers the starting snapshot once.
	w.Refresh()
	w.Refresh()
	w.Refresh()
	if len(fired) != 1 {
		t.Fatalf("repeated identical snapshots fired %d times, want 1", len(fired))
	}

	store.Save(Session{Token: "tok", Role: "admin"})
	w.Refresh()
	w.Refresh()
	if len(fired) != 2 {
		t.Fatalf("after one change fired %d times, want 2", len(fired))
	}
	if fired[1].Token != "tok" {
		t.Fatalf("change delivered %+v", fired[1])
	}

	store.Clear()
	w.Refresh()
	if len(fired) != 3 || fired[2].LoggedIn() {
		t.Fatalf("logout not delivered, fired=%v", fired)
	}
}

func TestWatcherStopSuppressesCallbacks(t *testing.T) {
	store := &memStore{}
	count := 0
	w := NewWatcher(store, time.Hour, func(Session) { count++ })

	w.Refresh()
	w.Stop()
	store.Save(Session{Token: "tok"})
	w.Refresh()

	if count != 1 {
		t.Fatalf("callback ran %d times after Stop, want 1", count)
	}
	// Stop twice must not panic.
	w.Stop()
}
