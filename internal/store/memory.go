package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps every collection as a JSON blob in process memory. It
// is the default backend for tests and for running the server without any
// external services. Access is guarded by a single RWMutex so that a load
// observes either the collection before or after a concurrent save, never
// a partial write.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Kind][]byte
}

// NewMemoryStore returns an empty in-memory entity store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Kind][]byte)}
}

// Load unmarshals the stored collection for kind into dest. A kind that
// has never been saved yields an empty collection.
func (s *MemoryStore) Load(_ context.Context, kind Kind, dest any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	s.mu.RLock()
	raw, ok := s.data[kind]
	s.mu.RUnlock()
	if !ok {
		raw = []byte("[]")
	}
	return json.Unmarshal(raw, dest)
}

// Save replaces the collection for kind with records.
func (s *MemoryStore) Save(_ context.Context, kind Kind, records any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[kind] = raw
	s.mu.Unlock()
	return nil
}
