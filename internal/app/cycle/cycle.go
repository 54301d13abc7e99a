package cycle

import (
	"context"
	"fmt"
	"sync"
)

// KeyRemotePage is the memoization key of the fetched remote page.
const KeyRemotePage = "remote:page"

// Cycle holds the memoized reads and the staged writes of one run.
type Cycle struct {
	ctx       context.Context
	cache     sync.Map
	mu        sync.Mutex
	actions   []Action
	committed bool
}

// New creates a cycle bound to ctx.
func New(ctx context.Context) *Cycle {
	return &Cycle{ctx: ctx}
}

// GetOrFetch returns the cached value for key or calls fetchFn and caches
// its result. Errors are not cached.
func (c *Cycle) GetOrFetch(key string, fetchFn func(ctx context.Context) (any, error)) (any, error) {
	if cached, ok := c.cache.Load(key); ok {
		return cached, nil
	}

	value, err := fetchFn(c.ctx)
	if err != nil {
		return nil, err
	}

	actual, _ := c.cache.LoadOrStore(key, value)

	return actual, nil
}

// Fetch is the typed form of GetOrFetch.
func Fetch[T any](c *Cycle, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.GetOrFetch(key, func(ctx context.Context) (any, error) {
		return fetchFn(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cycle: key %q holds %T", key, v)
	}

	return typed, nil
}
