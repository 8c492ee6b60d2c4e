package shared

import (
	"context"
	"slices"
	"sync"
)

// Collection is an ordered, newest-first, in-memory collection mirrored to its
// repository. Every successful mutation is followed by a full-collection persist.
// If the persist fails the in-memory change is kept and the error is returned.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	repo  CollectionRepository[T]
}

func NewCollection[T any](ctx context.Context, repo CollectionRepository[T]) *Collection[T] {
	return &Collection[T]{
		items: repo.Load(ctx),
		repo:  repo,
	}
}

func (c *Collection[T]) Key() string {
	return c.repo.Key()
}

// Snapshot returns a copy of the records, newest first.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Prepend puts item at the front and persists the collection.
func (c *Collection[T]) Prepend(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, 0, len(c.items)+1)
	items = append(items, item)
	c.items = append(items, c.items...)
	return c.repo.Persist(ctx, c.items)
}

// RemoveFunc drops every record matching fn and persists the result, even when
// nothing matched. It reports whether anything was removed.
func (c *Collection[T]) RemoveFunc(ctx context.Context, match func(T) bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := slices.DeleteFunc(slices.Clone(c.items), match)
	removed := len(kept) != len(c.items)
	c.items = kept
	return removed, c.repo.Persist(ctx, c.items)
}
