// Package state holds the session UI state and its durable slices. The
// in-memory copy is always authoritative; persistence is best-effort and a
// failed write never rolls a mutation back.
package state

import (
	"os"
	"path/filepath"

	"github.com/dexcard/dexcard/internal/logger"
)

// Storage keys. These are stable across versions; renaming one requires a
// migration.
const (
	KeyPrefs             = "prefs"
	KeyFavorites         = "favorites"
	KeyCollection        = "collection"
	KeyCollectionVersion = "collection_version"
	KeyHistory           = "history"
)

// KVStore is the narrow persistence surface the Store writes through. Set
// must swallow failures; Get reports absence instead of erroring.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// FileStore persists each key as its own JSON file under a state directory.
type FileStore struct {
	dir string
	log *logger.Logger
}

// NewFileStore creates the state directory if needed and returns a FileStore.
func NewFileStore(dir string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, log: log}, nil
}

// Get reads the stored value for key, reporting false when absent or
// unreadable.
func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value atomically via a temp file and rename. Failures are
// logged and swallowed: durable state may lag, memory stays authoritative.
func (s *FileStore) Set(key, value string) {
	path := s.path(key)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, []byte(value), 0o644); err != nil {
		s.log.WithFields(map[string]any{"key": key}).Debug("state write failed")
		return
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		s.log.WithFields(map[string]any{"key": key}).Debug("state rename failed")
	}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemoryStore is an in-process KVStore for tests and ephemeral sessions.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements KVStore.
func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set implements KVStore.
func (s *MemoryStore) Set(key, value string) {
	s.values[key] = value
}
