package registry

import (
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// Cache is a generic in-memory store with per-entry expiry. A
// background goroutine sweeps expired entries until Stop is called.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]*cacheItem[V]
	ttl   time.Duration
	done  chan struct{}
}

type cacheItem[V any] struct {
	value      V
	expiration time.Time
}

// NewCache builds a cache whose entries expire ttl after the last Set.
func NewCache[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	c := &Cache[K, V]{
		items: make(map[K]*cacheItem[V]),
		ttl:   ttl,
		done:  make(chan struct{}),
	}

	go c.cleanup()

	return c
}

// Get returns the live value for key, reporting false for missing or
// expired entries.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiration) {
		var zero V
		return zero, false
	}

	return item.value, true
}

// Set stores value under key with a fresh expiry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem[V]{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

// Keys lists the keys of all live entries in map order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	keys := make([]K, 0, len(c.items))
	for key, item := range c.items {
		if now.After(item.expiration) {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

// Stop ends the cleanup goroutine.
func (c *Cache[K, V]) Stop() {
	close(c.done)
}

func (c *Cache[K, V]) cleanup() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, item := range c.items {
				if now.After(item.expiration) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}
