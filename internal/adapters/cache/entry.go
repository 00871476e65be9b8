package cache

import (
	"time"

	"github.com/jsamuelsen11/realtime-config/internal/ports"
)

// entry is what the in-process stores keep per key. expiresAt is the
// absolute deadline, zero when there is none.
type entry struct {
	data      []byte
	expiresAt time.Time
	sliding   time.Duration
}

func newEntry(now time.Time, data []byte, opts ports.EntryOptions) entry {
	e := entry{data: data, sliding: opts.SlidingExpiry}
	if opts.AbsoluteExpiry > 0 {
		e.expiresAt = now.Add(opts.AbsoluteExpiry)
	}
	return e
}

// ttl is how long the entry may live from now: the sliding window capped
// by whatever remains of the absolute deadline. Zero means no expiry.
// ok is false once the absolute deadline has passed.
func (e entry) ttl(now time.Time) (ttl time.Duration, ok bool) {
	if !e.expiresAt.IsZero() {
		remaining := e.expiresAt.Sub(now)
		if remaining <= 0 {
			return 0, false
		}
		if e.sliding > 0 && e.sliding < remaining {
			return e.sliding, true
		}
		return remaining, true
	}
	return e.sliding, true
}
