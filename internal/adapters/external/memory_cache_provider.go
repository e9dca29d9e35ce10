package external

import (
	"context"
	"sync"
	"time"

	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// MemoryCacheProvider keeps entries in process memory. Sessions stored here
// do not survive a restart and are not shared between replicas.
type MemoryCacheProvider struct {
	data  map[string]memoryCacheItem
	mutex sync.RWMutex
	stats hitCounter
	now   func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		data: make(map[string]memoryCacheItem),
		now:  time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[key]
	c.mutex.RUnlock()

	if exists && !c.now().Before(item.expiresAt) {
		c.mutex.Lock()
		if current, ok := c.data[key]; ok && !c.now().Before(current.expiresAt) {
			delete(c.data, key)
		}
		c.mutex.Unlock()
		exists = false
	}

	if !exists {
		c.stats.miss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.stats.hit()
	out := make([]byte, len(item.data))
	copy(out, item.data)
	return out, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = memoryCacheItem{
		data:      stored,
		expiresAt: c.now().Add(ttl),
	}

	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// DeleteExpired drops every entry past its expiry and reports how many went.
// Get only evicts the keys it reads, so abandoned sessions need this sweep.
func (c *MemoryCacheProvider) DeleteExpired() int {
	now := c.now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	removed := 0
	for key, item := range c.data {
		if !now.Before(item.expiresAt) {
			delete(c.data, key)
			removed++
		}
	}
	return removed
}

// Ping always succeeds; the map is in-process.
func (c *MemoryCacheProvider) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return c.stats.snapshot()
}
