package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

var (
	_ ports.CacheStore    = (*RedisStore)(nil)
	_ ports.HealthChecker = (*RedisStore)(nil)
)

// Hash fields of a cache entry. Other distributed-cache clients sharing the
// Redis instance read and write the same layout.
const (
	fieldAbsoluteExpiry = "absexp"
	fieldSlidingExpiry  = "sldexp"
	fieldData           = "data"
)

// Entry timestamps are ticks: 100ns units counted from 0001-01-01 UTC.
// noExpiration marks an absent deadline or window.
const (
	unixEpochTicks = 621355968000000000
	noExpiration   = int64(-1)
)

// RedisStore keeps each entry in a Redis hash and lets Redis expire it.
type RedisStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

// NewRedisStore creates a RedisStore over an existing client. The caller
// owns the client and closes it.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// Get reads the entry's data. A sliding entry has its key TTL pushed out
// to the sliding window, never past the absolute deadline.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	vals, err := s.client.HMGet(ctx, key, fieldAbsoluteExpiry, fieldSlidingExpiry, fieldData).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis hmget %s: %w", key, err)
	}

	data, ok := vals[2].(string)
	if !ok {
		return nil, false, nil
	}

	if err := s.refresh(ctx, key, vals[0], vals[1]); err != nil {
		return nil, false, err
	}

	return []byte(data), true, nil
}

func (s *RedisStore) refresh(ctx context.Context, key string, absRaw, sldRaw any) error {
	sliding := parseTicks(sldRaw)
	if sliding == noExpiration {
		return nil
	}

	ttl := ticksToDuration(sliding)
	if abs := parseTicks(absRaw); abs != noExpiration {
		remaining := ticksToTime(abs).Sub(s.now())
		if remaining <= 0 {
			return nil
		}
		ttl = min(ttl, remaining)
	}

	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("redis expire %s: %w", key, err)
	}
	return nil
}

// Set writes the hash and its TTL in one transaction.
func (s *RedisStore) Set(ctx context.Context, key string, data []byte, opts ports.EntryOptions) error {
	now := s.now()

	abs, sld := noExpiration, noExpiration
	if opts.AbsoluteExpiry > 0 {
		abs = timeToTicks(now.Add(opts.AbsoluteExpiry))
	}
	if opts.SlidingExpiry > 0 {
		sld = durationToTicks(opts.SlidingExpiry)
	}

	ttl, _ := newEntry(now, data, opts).ttl(now)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldAbsoluteExpiry, abs,
			fieldSlidingExpiry, sld,
			fieldData, data,
		)
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		} else {
			pipe.Persist(ctx, key)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Name() string {
	return "cache-redis"
}

// HealthCheck pings Redis.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache-redis: %w", err)
	}
	return nil
}

func parseTicks(raw any) int64 {
	str, ok := raw.(string)
	if !ok {
		return noExpiration
	}
	v, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return noExpiration
	}
	return v
}

func timeToTicks(t time.Time) int64 {
	return unixEpochTicks + t.UnixNano()/100
}

func ticksToTime(ticks int64) time.Time {
	return time.Unix(0, (ticks-unixEpochTicks)*100).UTC()
}

func durationToTicks(d time.Duration) int64 {
	return int64(d / 100)
}

func ticksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks) * 100
}
