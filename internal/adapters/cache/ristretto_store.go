package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

var (
	_ ports.CacheStore    = (*RistrettoStore)(nil)
	_ ports.HealthChecker = (*RistrettoStore)(nil)
)

// errRejected is returned when ristretto's admission policy drops a write.
var errRejected = errors.New("entry rejected by cache admission policy")

// RistrettoStore is an in-process store backed by ristretto. Every entry
// costs 1, so MaxCost is the entry budget.
type RistrettoStore struct {
	cache *ristretto.Cache[string, entry]
	now   func() time.Time
}

// NewRistrettoStore creates a RistrettoStore. numCounters should be about
// ten times the number of distinct keys expected.
func NewRistrettoStore(numCounters, maxCost int64) (*RistrettoStore, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, entry]{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ristretto cache: %w", err)
	}
	return &RistrettoStore{cache: c, now: time.Now}, nil
}

func (s *RistrettoStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, found := s.cache.Get(key)
	if !found {
		return nil, false, nil
	}

	if e.sliding > 0 {
		ttl, ok := e.ttl(s.now())
		if !ok {
			s.cache.Del(key)
			return nil, false, nil
		}
		s.cache.SetWithTTL(key, e, 1, ttl)
		s.cache.Wait()
	}

	return e.data, true, nil
}

// Set waits for the write to be applied so a following Get observes it.
func (s *RistrettoStore) Set(_ context.Context, key string, data []byte, opts ports.EntryOptions) error {
	e := newEntry(s.now(), data, opts)
	ttl, _ := e.ttl(s.now())

	if !s.cache.SetWithTTL(key, e, 1, ttl) {
		return errRejected
	}
	s.cache.Wait()
	return nil
}

func (s *RistrettoStore) Delete(_ context.Context, key string) error {
	s.cache.Del(key)
	return nil
}

// Close releases the cache's background goroutines.
func (s *RistrettoStore) Close() {
	s.cache.Close()
}

func (s *RistrettoStore) Name() string {
	return "cache-ristretto"
}

// HealthCheck always passes; the store lives in this process.
func (s *RistrettoStore) HealthCheck(context.Context) error {
	return nil
}
