package gcalendar

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is the read-path response cache injected into the Client. A nil
// Cache disables caching entirely; there is no module-level fallback.
type Cache interface {
	Get(key string) (any, bool)
	Add(key string, value any)
}

type lruCache struct {
	lru *expirable.LRU[string, any]
}

// NewLRUCache creates a size-bounded cache whose entries expire after ttl.
func NewLRUCache(size int, ttl time.Duration) Cache {
	return &lruCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *lruCache) Get(key string) (any, bool) { return c.lru.Get(key) }
func (c *lruCache) Add(key string, value any)  { c.lru.Add(key, value) }
