package external

import (
	"context"
	"sync"

	"weatherdash.app/pkg/errors"
)

// MemoryPreferenceStore keeps preferences in process memory. Values do not
// survive a restart.
type MemoryPreferenceStore struct {
	data  map[string]string
	mutex sync.RWMutex
}

func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{
		data: make(map[string]string),
	}
}

func (s *MemoryPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("preference key cannot be empty")
	}

	s.mutex.RLock()
	value, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists {
		return "", errors.NewNotFoundError("preference not set")
	}
	return value, nil
}

func (s *MemoryPreferenceStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = value
	return nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryPreferenceStore) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored keys
func (s *MemoryPreferenceStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
