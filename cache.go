package songlink

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache stores raw successful response bodies keyed by request identity.
// Only HTTP 200 bodies are ever written. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte)
}

const (
	// DefaultCacheTTL is how long resolved links stay cached.
	DefaultCacheTTL = 15 * time.Minute

	defaultCacheSize = 512
)

// memoryCache is the default Cache backend, a TTL'd in-memory LRU
type memoryCache struct {
	lru *expirable.LRU[string, []byte]
}

func newMemoryCache(size int, ttl time.Duration) *memoryCache {
	return &memoryCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

// Get retrieves a cached body
func (m *memoryCache) Get(key string) ([]byte, bool) {
	return m.lru.Get(key)
}

// Set stores a body, evicting the least recently used entry when full
func (m *memoryCache) Set(key string, body []byte) {
	m.lru.Add(key, body)
}
