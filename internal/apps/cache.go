package apps

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

type parseResult struct {
	label string
	ok    bool
}

// ParseCache remembers parse results by resolved path for the current run,
// so symlinks to one desktop file are read once. It is never persisted.
type ParseCache struct {
	cache  *lru.Cache[string, parseResult]
	hits   int64
	misses int64
}

type CacheStats struct {
	Size   int
	Hits   int64
	Misses int64
}

func NewParseCache(maxSize int) (*ParseCache, error) {
	if maxSize <= 0 {
		maxSize = 512
	}

	cache, err := lru.New[string, parseResult](maxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create LRU cache: %w", err)
	}

	return &ParseCache{cache: cache}, nil
}

// resolve returns the key a path is cached under.
func (c *ParseCache) resolve(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}

func (c *ParseCache) get(key string) (parseResult, bool) {
	result, found := c.cache.Get(key)
	if found {
		atomic.AddInt64(&c.hits, 1)
		log.Debugf("Parse cache hit for %s", key)
		return result, true
	}
	atomic.AddInt64(&c.misses, 1)
	return parseResult{}, false
}

func (c *ParseCache) put(key string, result parseResult) {
	c.cache.Add(key, result)
}

func (c *ParseCache) Stats() CacheStats {
	return CacheStats{
		Size:   c.cache.Len(),
		Hits:   atomic.LoadInt64(&c.hits),
		Misses: atomic.LoadInt64(&c.misses),
	}
}
