package ratelimit

import (
	"sync"
	"time"
)

type memoryEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryStore is an in-process AttemptStore backed by a mutex-guarded map.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-process attempt store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Increment implements AttemptStore.
func (s *MemoryStore) Increment(key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || now.After(entry.expiresAt) {
		entry = memoryEntry{count: 0, expiresAt: now.Add(window)}
	}

	entry.count++
	s.entries[key] = entry
	return entry.count, nil
}
