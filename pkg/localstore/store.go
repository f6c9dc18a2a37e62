package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a small string key-value store. It mirrors what browser
// localStorage gives a web client: flat keys, string values, no TTL.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore persists the key-value map as a single JSON file.
// A single client is expected to write sequentially, but reads and writes
// are guarded anyway so the store is safe to share inside one process.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// OpenFile loads the store from the given file, creating parent directories
// as needed. A missing or corrupted file starts an empty store rather than
// failing: local state is a convenience, not a source of truth.
func OpenFile(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("localstore: empty file path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create state dir: %w", err)
	}

	s := &FileStore{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("localstore: read state file: %w", err)
	}

	// Corrupted state degrades to empty
	var values map[string]string
	if err := json.Unmarshal(data, &values); err == nil && values != nil {
		s.values = values
	}

	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.flush()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.flush()
}

// flush writes the map atomically via a temp file rename.
// Caller must hold s.mu.
func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: marshal state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("localstore: write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: replace state file: %w", err)
	}

	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMem() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
