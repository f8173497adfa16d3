// Package cache provides a TTL-scoped, single-flight memoization layer in
// front of the catalog provider.
//
// Each key moves through EMPTY -> FETCHING -> FRESH -> STALE -> FETCHING.
// At most one fetch per key is in flight; concurrent callers share its
// result. A failed refresh serves the previous value when one exists and
// only surfaces an error for keys that were never loaded.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"estimator_backend/platform/apperr"
	"estimator_backend/platform/logger"
)

// DefaultTTL matches the daily catalog refresh policy.
const DefaultTTL = 24 * time.Hour

// State is the lifecycle state of a single key.
type State int

const (
	StateEmpty State = iota
	StateFetching
	StateFresh
	StateStale
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateFresh:
		return "fresh"
	case StateStale:
		return "stale"
	default:
		return "empty"
	}
}

// FetchFunc loads the value for key from the underlying provider.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// Option configures a Cache.
type Option func(*options)

type options struct {
	ttl time.Duration
	now func() time.Time
	log *logger.Logger
}

// WithTTL sets how long a fetched value stays fresh.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used to report failed refreshes.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

type entry[T any] struct {
	value       T
	fetchedAt   time.Time
	invalidated bool
}

// Cache memoizes FetchFunc results per key.
type Cache[T any] struct {
	name  string
	fetch FetchFunc[T]
	ttl   time.Duration
	now   func() time.Time
	log   *logger.Logger

	mu       sync.RWMutex
	entries  map[string]entry[T]
	fetching map[string]struct{}
	flights  singleflight.Group
}

// New creates a cache named name (used in logs and invalidation messages).
func New[T any](name string, fetch FetchFunc[T], opts ...Option) *Cache[T] {
	o := options{ttl: DefaultTTL, now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache[T]{
		name:     name,
		fetch:    fetch,
		ttl:      o.ttl,
		now:      o.now,
		log:      o.log,
		entries:  make(map[string]entry[T]),
		fetching: make(map[string]struct{}),
	}
}

// Name returns the cache name.
func (c *Cache[T]) Name() string {
	return c.name
}

// Get returns the value for key, fetching it when the key is empty or stale.
// Abandoning ctx only releases this caller; the shared fetch keeps running
// and populates the cache for everyone else.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, error) {
	if value, ok := c.lookupFresh(key); ok {
		return value, nil
	}

	flight := c.flights.DoChan(key, func() (interface{}, error) {
		return c.refresh(context.WithoutCancel(ctx), key)
	})

	select {
	case res := <-flight:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		value, _ := res.Val.(T)
		return value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// refresh runs inside the single flight for key.
func (c *Cache[T]) refresh(ctx context.Context, key string) (T, error) {
	// A flight that finished just before this one started may already have
	// stored a fresh value.
	if value, ok := c.lookupFresh(key); ok {
		return value, nil
	}

	c.mu.Lock()
	c.fetching[key] = struct{}{}
	c.mu.Unlock()

	value, err := c.fetch(ctx, key)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.fetching, key)

	if err != nil {
		if prev, ok := c.entries[key]; ok {
			c.log.CatalogRefreshFailed(c.name, key, err, true)
			return prev.value, nil
		}
		c.log.CatalogRefreshFailed(c.name, key, err, false)
		var zero T
		return zero, apperr.Unavailable("catalog source unavailable", err).WithOp(c.name)
	}

	c.entries[key] = entry[T]{value: value, fetchedAt: c.now()}
	return value, nil
}

func (c *Cache[T]) lookupFresh(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.isFresh(e) {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *Cache[T]) isFresh(e entry[T]) bool {
	return !e.invalidated && c.now().Sub(e.fetchedAt) < c.ttl
}

// State reports the lifecycle state of key.
func (c *Cache[T]) State(key string) State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.fetching[key]; ok {
		return StateFetching
	}
	e, ok := c.entries[key]
	switch {
	case !ok:
		return StateEmpty
	case c.isFresh(e):
		return StateFresh
	default:
		return StateStale
	}
}

// Invalidate marks keys stale. Values are kept so a failing refresh can
// still serve them.
func (c *Cache[T]) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if e, ok := c.entries[key]; ok {
			e.invalidated = true
			c.entries[key] = e
		}
	}
}

// InvalidateAll marks every key stale.
func (c *Cache[T]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		e.invalidated = true
		c.entries[key] = e
	}
}

// Len returns the number of loaded keys, fresh or stale.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
