// internal/pkg/session/file_store.go
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps the session in a small JSON file, the terminal
// equivalent of the browser's localStorage entries. Writes go through a
// temp file and rename so readers never observe a partial session.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (f *FileStore) Save(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		f.logger.Warn("session save skipped, storage unavailable", zap.Error(err))
		return nil
	}
	if err := os.Rename(tmp, f.path); err != nil {
		f.logger.Warn("session save skipped, storage unavailable", zap.Error(err))
		_ = os.Remove(tmp)
		return nil
	}
	return nil
}

func (f *FileStore) Load() Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return Session{}
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		f.logger.Warn("session file unreadable, treating as logged out", zap.Error(err))
		return Session{}
	}
	return s
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		f.logger.Warn("session clear skipped, storage unavailable", zap.Error(err))
	}
	return nil
}

// Path returns the backing file location, used by the app for diagnostics.
func (f *FileStore) Path() string {
	return filepath.Clean(f.path)
}
