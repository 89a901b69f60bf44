package models

import (
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds a WindowCache created with size <= 0.
const DefaultCacheSize = 256

type cacheKey struct {
	birth  int64
	center int64
}

// WindowCache memoises Calculate by (birth, center) calendar day. It is safe
// for concurrent use; the least recently used window is evicted once the
// cache is full.
type WindowCache struct {
	size    int
	entries *lru.Cache[cacheKey, Window]
	hits    atomic.Int64
	misses  atomic.Int64
}

func NewWindowCache(size int) *WindowCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[cacheKey, Window](size)
	return &WindowCache{size: size, entries: entries}
}

// Get returns the window for (birth, center), calculating it on a miss.
// The returned slice is a copy and may be modified by the caller.
func (c *WindowCache) Get(birth, center time.Time) Window {
	key := cacheKey{CalendarDay(birth).Unix(), CalendarDay(center).Unix()}
	if w, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return w.Clone()
	}
	c.misses.Add(1)

	w := Calculate(birth, center)
	c.entries.Add(key, w)
	return w.Clone()
}

// Stats reports hit and miss counts since creation.
func (c *WindowCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

func (c *WindowCache) Len() int {
	return c.entries.Len()
}
