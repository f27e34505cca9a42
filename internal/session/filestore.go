package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps the key-value pairs in a single JSON file. The default
// store; one session record is all it ever holds.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() map[string]json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	var kv map[string]json.RawMessage
	if err := json.Unmarshal(data, &kv); err != nil || kv == nil {
		// A corrupt file reads as empty; the gate treats that as logged out.
		return map[string]json.RawMessage{}
	}
	return kv
}

func (s *FileStore) save(kv map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv := s.load()
	kv[key] = json.RawMessage(value)
	return s.save(kv)
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv := s.load()
	value, ok := kv[key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv := s.load()
	if _, ok := kv[key]; !ok {
		return nil
	}
	delete(kv, key)
	return s.save(kv)
}
