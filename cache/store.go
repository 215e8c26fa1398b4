package cache

import (
	"context"
	"sync"
	"time"
)

// Store persists cached API responses and the tags that invalidate them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte, tags []string, ttl time.Duration) error
	// InvalidateTags drops every entry carrying any of tags and returns how many were dropped.
	InvalidateTags(ctx context.Context, tags ...string) (int, error)
	// Purge drops expired entries.
	Purge(ctx context.Context) (int, error)
}

type memoryEntry struct {
	payload   []byte
	tags      []string
	expiresAt time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	byTag   map[string]map[string]struct{}
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		byTag:   make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return e.payload, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, payload []byte, tags []string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(key)
	s.entries[key] = memoryEntry{payload: payload, tags: tags, expiresAt: s.now().Add(ttl)}
	for _, tag := range tags {
		keys, ok := s.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			s.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

func (s *MemoryStore) InvalidateTags(_ context.Context, tags ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, tag := range tags {
		for key := range s.byTag[tag] {
			if s.removeLocked(key) {
				removed++
			}
		}
	}
	return removed, nil
}

func (s *MemoryStore) Purge(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for key, e := range s.entries {
		if !now.Before(e.expiresAt) && s.removeLocked(key) {
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) removeLocked(key string) bool {
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	delete(s.entries, key)
	for _, tag := range e.tags {
		if keys, ok := s.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(s.byTag, tag)
			}
		}
	}
	return true
}
