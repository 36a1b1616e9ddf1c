package cosmetic

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// templateCache is an in-memory LRU for cosmetic templates with
// time-based expiration. Minted counts change on every mint, so the TTL
// is short and mint paths always read through the repository; the cache
// serves catalogue browsing only.
type templateCache struct {
	lru *expirable.LRU[string, *domain.CosmeticTemplate]
}

func newTemplateCache(size int, ttl time.Duration) *templateCache {
	return &templateCache{
		lru: expirable.NewLRU[string, *domain.CosmeticTemplate](size, nil, ttl),
	}
}

func (c *templateCache) Get(key string) (*domain.CosmeticTemplate, bool) {
	return c.lru.Get(key)
}

func (c *templateCache) Set(key string, template *domain.CosmeticTemplate) {
	c.lru.Add(key, template)
}

func (c *templateCache) Invalidate(key string) {
	c.lru.Remove(key)
}
