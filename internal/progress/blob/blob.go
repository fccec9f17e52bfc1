package blob

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Load when no record has been saved yet.
var ErrNotFound = errors.New("blob: not found")

// Store persists the single serialized user record. The medium is an
// interchangeable adapter: file, redis, sqlite or memory. Adapters only move
// bytes; they never interpret the record.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Delete() error
}

// MemoryStore keeps the blob in process memory. Used in tests and as the
// ephemeral fallback storage mode.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *MemoryStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
