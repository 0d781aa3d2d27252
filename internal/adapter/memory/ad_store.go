package memory

import (
	"context"
	"sync"
)

// AdStore implements port.AdStore in process memory. Values are lost on
// restart, which only costs one extra generation per process lifetime.
type AdStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewAdStore returns an empty store.
func NewAdStore() *AdStore {
	return &AdStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *AdStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set overwrites the value stored under key.
func (s *AdStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
