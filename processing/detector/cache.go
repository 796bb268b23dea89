package processing

import (
	"image"
	"sync"
	"time"
)

// imageCache keeps decoded assets with a TTL and a size cap; the least
// recently accessed entry is evicted when full.
type imageCache struct {
	ttl     time.Duration
	maxSize int
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	img        image.Image
	expiresAt  time.Time
	lastAccess time.Time
}

func newImageCache(ttl time.Duration, maxSize int) *imageCache {
	return &imageCache{
		ttl:     ttl,
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

func (c *imageCache) Get(key string) (image.Image, bool) {
	c.mu.RLock()
	_, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Re-read: a Set may have replaced the entry between the two locks.
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	now := c.now()
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	e.lastAccess = now
	return e.img, true
}

func (c *imageCache) Set(key string, img image.Image) {
	if c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, v := range c.entries {
			if oldestKey == "" || v.lastAccess.Before(oldest) {
				oldestKey = k
				oldest = v.lastAccess
			}
		}
		delete(c.entries, oldestKey)
	}

	now := c.now()
	c.entries[key] = &cacheEntry{img: img, expiresAt: now.Add(c.ttl), lastAccess: now}
}

func (c *imageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
