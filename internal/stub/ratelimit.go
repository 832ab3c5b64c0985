// internal/stub/ratelimit.go
package stub

import (
	"fmt"
	"sync"
	"time"
)

const (
	loginMaxAttempts = 5
	loginWindow      = 15 * time.Minute
)

type attemptWindow struct {
	count   int64
	resetAt time.Time
}

// LoginRateLimiter allows up to 5 login attempts per ip+email in a
// 15 minute window. In-memory counters; the stub has no shared state to
// coordinate.
type LoginRateLimiter struct {
	mu      sync.Mutex
	windows map[string]*attemptWindow
}

func NewLoginRateLimiter() *LoginRateLimiter {
	return &LoginRateLimiter{windows: make(map[string]*attemptWindow)}
}

// CheckLoginAttempt records one attempt and reports whether it is
// allowed, plus the attempts remaining in the window.
func (r *LoginRateLimiter) CheckLoginAttempt(ip, email string) (bool, int64) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &attemptWindow{resetAt: now.Add(loginWindow)}
		r.windows[key] = w
	}
	w.count++

	remaining := loginMaxAttempts - w.count
	if remaining < 0 {
		remaining = 0
	}
	return w.count <= loginMaxAttempts, remaining
}

// ResetLoginAttempts clears the counter after a successful login.
func (r *LoginRateLimiter) ResetLoginAttempts(ip, email string) {
	key := fmt.Sprintf("ratelimit:login:%s:%s", ip, email)
	r.mu.Lock()
	delete(r.windows, key)
	r.mu.Unlock()
}
