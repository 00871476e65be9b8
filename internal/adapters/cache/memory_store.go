package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

var (
	_ ports.CacheStore    = (*MemoryStore)(nil)
	_ ports.HealthChecker = (*MemoryStore)(nil)
)

// MemoryStore is an in-process store backed by ttlcache. Hits do not touch
// entries on their own; sliding entries are re-armed explicitly so the
// window never outlives an absolute deadline.
type MemoryStore struct {
	cache *ttlcache.Cache[string, entry]
	now   func() time.Time
}

// NewMemoryStore creates a MemoryStore holding at most capacity entries;
// zero is unbounded. It starts the expired-item janitor, which Close stops.
func NewMemoryStore(capacity uint64) *MemoryStore {
	opts := []ttlcache.Option[string, entry]{
		ttlcache.WithDisableTouchOnHit[string, entry](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, entry](capacity))
	}

	c := ttlcache.New(opts...)
	go c.Start()

	return &MemoryStore{cache: c, now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	item := s.cache.Get(key)
	if item == nil {
		return nil, false, nil
	}

	e := item.Value()
	if e.sliding > 0 {
		ttl, ok := e.ttl(s.now())
		if !ok {
			s.cache.Delete(key)
			return nil, false, nil
		}
		s.cache.Set(key, e, ttl)
	}

	return e.data, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, data []byte, opts ports.EntryOptions) error {
	e := newEntry(s.now(), data, opts)

	ttl, _ := e.ttl(s.now())
	if ttl == 0 {
		ttl = ttlcache.NoTTL
	}
	s.cache.Set(key, e, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}

// Close stops the janitor goroutine.
func (s *MemoryStore) Close() {
	s.cache.Stop()
}

func (s *MemoryStore) Name() string {
	return "cache-memory"
}

// HealthCheck always passes; the store lives in this process.
func (s *MemoryStore) HealthCheck(context.Context) error {
	return nil
}
