package cache

import (
	"sync"
	"time"
)

// SearchCriteria holds the advanced-search dropdown data served by the backend.
type SearchCriteria struct {
	Categories []string
	Brands     []string
	Countries  []string
}

// CriteriaCache keeps the advanced-search criteria in memory for a TTL so
// the populate endpoint is not hit on every page load.
type CriteriaCache struct {
	mu        sync.RWMutex
	criteria  SearchCriteria
	fetchedAt time.Time
	ttl       time.Duration
}

func NewCriteriaCache(ttl time.Duration) *CriteriaCache {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &CriteriaCache{ttl: ttl}
}

// Get returns the cached criteria and whether they are still fresh.
func (c *CriteriaCache) Get() (SearchCriteria, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() || time.Since(c.fetchedAt) > c.ttl {
		return SearchCriteria{}, false
	}
	return c.criteria, true
}

func (c *CriteriaCache) Set(criteria SearchCriteria) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = criteria
	c.fetchedAt = time.Now()
}
