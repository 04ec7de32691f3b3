package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/i474232898/overcast/internal/weather"
)

var (
	// ErrNotFound is returned when no forecast is cached for a key.
	ErrNotFound = errors.New("no cached forecast for location")
)

// MemoryStore is a concurrency-safe in-memory forecast cache.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: latest snapshot
	data map[string]weather.Snapshot

	// snapshots older than maxAge are dropped (0 = keep forever)
	maxAge time.Duration
	now    func() time.Time
}

// NewMemoryStore creates a new MemoryStore.
// If maxAge is <= 0, entries never expire.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]weather.Snapshot),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// SaveSnapshot replaces the snapshot for key and prunes expired entries.
func (s *MemoryStore) SaveSnapshot(_ context.Context, key string, snapshot weather.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = snapshot

	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		for k, snap := range s.data {
			if snap.FetchedAt.Before(cutoff) {
				delete(s.data, k)
			}
		}
	}
	return nil
}

// GetLatest returns the snapshot for key.
func (s *MemoryStore) GetLatest(_ context.Context, key string) (weather.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[key]
	if !ok {
		return weather.Snapshot{}, ErrNotFound
	}
	if s.maxAge > 0 && s.now().Sub(snap.FetchedAt) >= s.maxAge {
		return weather.Snapshot{}, ErrNotFound
	}
	return snap, nil
}

// Len returns the number of cached locations.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
