// Package memory provides an in-process InputStore, used by tests and by the
// server when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/storage"
)

// Store keeps encoded inputs in a map.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Save stores inputs under key, replacing any previous value.
func (s *Store) Save(_ context.Context, key string, inputs domain.RawInputs) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	data, err := storage.Encode(inputs)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

// Load returns the inputs stored under key or storage.ErrNotFound.
func (s *Store) Load(_ context.Context, key string) (domain.RawInputs, error) {
	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return domain.RawInputs{}, storage.ErrNotFound
	}
	return storage.Decode(data)
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
