package registry

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"
)

const (
	DefaultCacheCapacity = 1000
	DefaultCacheTTL      = time.Minute
)

// Cached decorates a Registry with an LRU + TTL cache over sensor lookups,
// the hot path of every ingest request. Only hits are cached, so a sensor
// registered after a miss becomes visible on the next call.
// List and district calls pass through.
type Cached struct {
	Registry

	cache *lruCache
}

// NewCached wraps inner. Non-positive capacity or ttl fall back to defaults.
func NewCached(inner Registry, capacity int, ttl time.Duration) *Cached {
	if inner == nil {
		panic("registry: nil inner registry")
	}
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		Registry: inner,
		cache:    newLRUCache(capacity, ttl, time.Now),
	}
}

func (c *Cached) Get(ctx context.Context, id string) (Sensor, error) {
	if s, ok := c.cache.get(id); ok {
		return s, nil
	}

	s, err := c.Registry.Get(ctx, id)
	if err != nil {
		return Sensor{}, err
	}

	c.cache.put(s)
	return s, nil
}

func (c *Cached) Exists(ctx context.Context, id string) (bool, error) {
	_, err := c.Get(ctx, id)
	if errors.Is(err, ErrSensorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Invalidate drops one sensor from the cache.
func (c *Cached) Invalidate(id string) {
	c.cache.invalidate(id)
}

// lruCache is a thread-safe LRU cache of sensors with per-entry expiry.
type lruCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]*list.Element
	order    *list.List
}

type cacheEntry struct {
	sensor    Sensor
	expiresAt time.Time
}

func newLRUCache(capacity int, ttl time.Duration, now func() time.Time) *lruCache {
	return &lruCache{
		capacity: capacity,
		ttl:      ttl,
		now:      now,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (c *lruCache) get(id string) (Sensor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.entries[id]
	if !exists {
		return Sensor{}, false
	}

	entry := elem.Value.(*cacheEntry)
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, id)
		c.order.Remove(elem)
		return Sensor{}, false
	}

	// Move to front (most recently used)
	c.order.MoveToFront(elem)
	return entry.sensor, true
}

func (c *lruCache) put(s Sensor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)

	if elem, exists := c.entries[s.ID]; exists {
		c.order.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.sensor = s
		entry.expiresAt = expiresAt
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			delete(c.entries, oldest.Value.(*cacheEntry).sensor.ID)
			c.order.Remove(oldest)
		}
	}

	c.entries[s.ID] = c.order.PushFront(&cacheEntry{sensor: s, expiresAt: expiresAt})
}

func (c *lruCache) invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.entries[id]
	if !exists {
		return
	}
	delete(c.entries, id)
	c.order.Remove(elem)
}

func (c *lruCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
