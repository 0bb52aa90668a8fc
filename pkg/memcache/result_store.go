// pkg/memcache/result_store.go
package mem

import (
	"context"
	"sync"
	"time"
)

// ResultStore keeps encoded recommendation results for a limited time.
type ResultStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value for key if present and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type InMemoryResults struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewInMemoryResults() *InMemoryResults {
	return &InMemoryResults{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *InMemoryResults) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked()
	buf := make([]byte, len(value))
	copy(buf, value)
	s.data[key] = entry{
		value:     buf,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *InMemoryResults) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (s *InMemoryResults) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// evictExpiredLocked drops expired entries; callers hold the write lock.
func (s *InMemoryResults) evictExpiredLocked() {
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
