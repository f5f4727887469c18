package adapter

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	m "devkit.dev/pkg/devkit/internal/model"
)

// DefaultResultCacheSize bounds the number of cached outcomes.
const DefaultResultCacheSize = 1024

// ResultCache remembers outcomes by operation and content hash so identical
// files are only processed once per run.
type ResultCache interface {
	Get(op m.Operation, hash string) (m.Outcome, bool)
	Add(op m.Operation, hash string, outcome m.Outcome)
	Len() int
}

// LRUResultCache is a ResultCache with least recently used eviction.
type LRUResultCache struct {
	cache *lru.Cache[string, m.Outcome]
}

// NewLRUResultCache returns a cache holding at most size outcomes.
func NewLRUResultCache(size int) (*LRUResultCache, error) {
	if size <= 0 {
		size = DefaultResultCacheSize
	}

	cache, err := lru.New[string, m.Outcome](size)
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}

	return &LRUResultCache{cache: cache}, nil
}

// Get implements ResultCache.
func (c *LRUResultCache) Get(op m.Operation, hash string) (m.Outcome, bool) {
	if hash == "" {
		return m.Outcome{}, false
	}

	return c.cache.Get(cacheKey(op, hash))
}

// Add implements ResultCache.
func (c *LRUResultCache) Add(op m.Operation, hash string, outcome m.Outcome) {
	if hash == "" {
		return
	}

	c.cache.Add(cacheKey(op, hash), outcome)
}

// Len implements ResultCache.
func (c *LRUResultCache) Len() int {
	return c.cache.Len()
}

func cacheKey(op m.Operation, hash string) string {
	return string(op) + ":" + hash
}
