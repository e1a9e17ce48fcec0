package client

import (
	"context"
	"sync"
)

// Collection is a fetch-state container for one collection endpoint. It
// owns the fetch lifecycle a view layer binds to: an item list, a loading
// flag that is true from creation until the first fetch settles, and the
// error of the last fetch.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
	err     error

	fetch func(ctx context.Context) ([]T, error)
}

// NewCollection creates a container around a fetch function
func NewCollection[T any](fetch func(ctx context.Context) ([]T, error)) *Collection[T] {
	return &Collection[T]{
		items:   []T{},
		loading: true,
		fetch:   fetch,
	}
}

// Items returns the last successfully fetched items. Never nil.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Loading reports whether a first settle is still outstanding or a fetch
// is in flight
func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the error of the last fetch, nil after a success
func (c *Collection[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Fetch runs one fetch cycle. On success the items are replaced and the
// error cleared; on failure the previous items persist and the error is
// recorded. The loading flag always ends false.
func (c *Collection[T]) Fetch(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.err = nil
	return nil
}

// Refetch re-runs the fetch; callers use it to resynchronize after a
// mutation
func (c *Collection[T]) Refetch(ctx context.Context) error {
	return c.Fetch(ctx)
}

// Attach runs the initial fetch. There is no polling; later updates only
// happen through Refetch.
func (c *Collection[T]) Attach(ctx context.Context) *Collection[T] {
	_ = c.Fetch(ctx)
	return c
}
