// Package cache provides a generic in-memory TTL cache used to keep catalog
// reads off the API between navigation steps.
package cache

import (
	"sync"
	"time"
)

// item pairs a cached value with its expiry deadline.
type item[V any] struct {
	value    V
	deadline time.Time
}

// Cache maps keys to values with a fixed time-to-live per entry.
// All methods are safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	items   map[K]item[V]
	ttl     time.Duration
	nowFunc func() time.Time // For testing
}

// New creates a cache whose entries expire ttl after they are set.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		items:   make(map[K]item[V]),
		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// Get returns the live value for key. Expired entries are treated as absent.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[key]
	if !ok || c.nowFunc().After(it.deadline) {
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores value under key, resetting its expiry to now plus the TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[V]{
		value:    value,
		deadline: c.nowFunc().Add(c.ttl),
	}
}

// Delete removes key from the cache. Missing keys are a no-op.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]item[V])
}

// Prune evicts expired entries. Expired values are invisible to Get either
// way; pruning just releases the memory.
func (c *Cache[K, V]) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFunc()
	for key, it := range c.items {
		if now.After(it.deadline) {
			delete(c.items, key)
		}
	}
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
