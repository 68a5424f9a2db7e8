package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store, used in tests and as a throwaway backend.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]json.RawMessage)}
}

func (s *MemStore) Load(ctx context.Context, key string, out interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	data, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}
	return true, nil
}

func (s *MemStore) Save(ctx context.Context, key string, v interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}

	s.mu.Lock()
	s.records[key] = data
	s.mu.Unlock()
	return nil
}
