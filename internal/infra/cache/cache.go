package cache

import (
	"sync"
	"time"

	"github.com/raymondjoseph02/news-today/internal/domain"
	"github.com/raymondjoseph02/news-today/internal/infra/metrics"
)

type entry struct {
	result    *domain.NewsResult
	fetchedAt time.Time
}

// ResultCache memoizes fetch results keyed by the normalized query's
// serialized form. Entries expire after a fixed TTL; expired entries are
// treated as misses and replaced lazily, never swept.
type ResultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached result for query, or false on a miss or an
// expired entry.
func (c *ResultCache) Get(query domain.NewsQuery) (*domain.NewsResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[query.Key()]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.fetchedAt) > c.ttl {
		metrics.CacheMisses.Inc()
		return nil, false
	}
	metrics.CacheHits.Inc()
	return e.result, true
}

// Put stores a result for query, replacing any previous entry.
func (c *ResultCache) Put(query domain.NewsQuery, result *domain.NewsResult) {
	c.mu.Lock()
	c.entries[query.Key()] = entry{result: result, fetchedAt: c.now()}
	c.mu.Unlock()
}
