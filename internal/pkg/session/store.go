// internal/pkg/session/store.go
package session

// Store persists the authenticated session across runs. Implementations
// must never surface storage failures to readers: Load on unavailable
// storage returns the zero Session, Save and Clear degrade to logged
// no-ops. All three operations are atomic from the caller's perspective
// and safe for concurrent use.
type Store interface {
	Save(s Session) error
	Load() Session
	Clear() error
}
