package ports

import (
	"context"
	"time"
)

// EntryOptions controls the lifetime of a cache entry. A zero value means
// the entry never expires. When both fields are set, the entry expires at
// whichever deadline comes first.
type EntryOptions struct {
	// AbsoluteExpiry is the lifetime measured from the write.
	AbsoluteExpiry time.Duration
	// SlidingExpiry is the idle lifetime; every read extends it.
	SlidingExpiry time.Duration
}

// CacheStore is the distributed byte store underneath the cache provider
// (Redis, in-process TTL cache, ...). Implementations provide per-key
// atomicity for individual operations only.
type CacheStore interface {
	// Get returns the stored bytes. found is false on a miss; a miss is
	// never reported as an error.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Set stores data under key with the given expiry options.
	Set(ctx context.Context, key string, data []byte, opts EntryOptions) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// CacheProvider namespaces keys and (de)serializes values on top of a
// CacheStore. Implemented by the cache adapter; called by the application
// layer.
type CacheProvider interface {
	// GetString returns the raw string under key. ok is false on a miss.
	GetString(ctx context.Context, key string) (value string, ok bool, err error)

	// SetString stores a raw string. A zero expiresIn never expires.
	SetString(ctx context.Context, key, value string, expiresIn time.Duration) error

	// SetStringSliding stores a raw string whose lifetime is extended on
	// every read. A zero sliding never expires.
	SetStringSliding(ctx context.Context, key, value string, sliding time.Duration) error

	// Get decodes the value under key into dst. ok is false on a miss, in
	// which case dst is left untouched.
	Get(ctx context.Context, key string, dst any) (ok bool, err error)

	// Set encodes value and stores it under key. A zero expiresIn never
	// expires.
	Set(ctx context.Context, key string, value any, expiresIn time.Duration) error

	// Clear removes key.
	Clear(ctx context.Context, key string) error
}
