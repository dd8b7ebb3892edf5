// Package cache provides classification result caches keyed by merchant key.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// entry represents a cached classification result.
type entry struct {
	expiry time.Time
	result service.CachedResult
}

// Memory is a thread-safe in-process cache. Entries carry their own expiry;
// a background goroutine sweeps expired entries.
type Memory struct {
	entries map[model.MerchantKey]entry
	stopCh  chan struct{}
	mu      sync.RWMutex
}

// NewMemory creates a new in-memory cache and starts its sweeper.
func NewMemory() *Memory {
	c := &Memory{
		entries: make(map[model.MerchantKey]entry),
		stopCh:  make(chan struct{}),
	}

	go c.sweep()

	return c
}

// Get retrieves a result if it exists and has not expired.
func (c *Memory) Get(_ context.Context, key model.MerchantKey) (service.CachedResult, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[key]
	if !exists || time.Now().After(e.expiry) {
		return service.CachedResult{}, false, nil
	}

	return e.result, true, nil
}

// Set stores a result with the given TTL.
func (c *Memory) Set(_ context.Context, key model.MerchantKey, result service.CachedResult, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		result: result,
		expiry: time.Now().Add(ttl),
	}
	return nil
}

// sweep periodically removes expired entries.
func (c *Memory) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, e := range c.entries {
				if now.After(e.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// Size returns the number of entries in the cache, including expired ones not
// yet swept.
func (c *Memory) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the sweeper goroutine.
func (c *Memory) Close() {
	close(c.stopCh)
}
