package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// Cache is a single-entry read-through cache with a fixed TTL.
// The clock is injected so TTL behavior can be tested with a fake clock.
// In production, use clockwork.NewRealClock().
type Cache[T any] struct {
	ttl   time.Duration
	clock clockwork.Clock

	mu        sync.Mutex
	payload   T
	fetchedAt time.Time
	populated bool

	group singleflight.Group
}

// New creates a cache with the given TTL
func New[T any](ttl time.Duration, clock clockwork.Clock) *Cache[T] {
	return &Cache[T]{
		ttl:   ttl,
		clock: clock,
	}
}

// Get returns the cached payload if it is still fresh, otherwise invokes
// fetch. On success the payload and timestamp are replaced atomically; on
// failure the error is returned and the previous entry is left untouched.
// Concurrent misses are collapsed into a single upstream fetch.
func (c *Cache[T]) Get(fetch func() (T, error)) (T, error) {
	if payload, ok := c.fresh(); ok {
		return payload, nil
	}

	v, err, _ := c.group.Do("fetch", func() (interface{}, error) {
		// A concurrent caller may have refreshed while we waited
		if payload, ok := c.fresh(); ok {
			return payload, nil
		}

		payload, err := fetch()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.payload = payload
		c.fetchedAt = c.clock.Now()
		c.populated = true
		c.mu.Unlock()

		return payload, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// fresh returns the payload if it was fetched within the TTL
func (c *Cache[T]) fresh() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.populated || c.clock.Since(c.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return c.payload, true
}
