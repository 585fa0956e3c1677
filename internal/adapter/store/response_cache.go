package store

import (
	"sync"
	"time"

	"pathwise-core/internal/domain/entity"
)

// DefaultResponseTTL is how long a computed recommendation set stays fresh.
const DefaultResponseTTL = 30 * time.Minute

type cacheEntry struct {
	payload   *entity.RecommendationResult
	createdAt time.Time
}

// ResponseCache is an in-process TTL map. Expired entries are removed lazily
// when read; there is no background sweeper.
type ResponseCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return NewResponseCacheWithClock(ttl, time.Now)
}

func NewResponseCacheWithClock(ttl time.Duration, now func() time.Time) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *ResponseCache) Get(key string) (*entity.RecommendationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.createdAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.payload, true
}

func (c *ResponseCache) Set(key string, result *entity.RecommendationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: result, createdAt: c.now()}
}

// Len counts stored entries, expired ones included until they are read.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
