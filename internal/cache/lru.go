// Package cache provides a TTL'd LRU used by the client to avoid refetching
// presentations that have not changed.
package cache

import (
	"container/list"
	"log/slog"
	"sync"
	"time"
)

// entry is a cached value with its expiry.
type entry struct {
	key       string
	value     any
	expiresAt time.Time
}

func (e *entry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// Stats tracks cache effectiveness.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Config holds LRU configuration.
type Config struct {
	// MaxEntries is the capacity. Zero means the default of 100.
	MaxEntries int
	// TTL is the lifetime of an entry. Zero means the default of 5 minutes.
	TTL    time.Duration
	Logger *slog.Logger
}

// LRU is a thread-safe LRU cache with per-entry expiry.
type LRU struct {
	config Config
	mu     sync.Mutex
	items  map[string]*list.Element
	order  *list.List
	stats  Stats
}

// NewLRU creates an LRU cache.
func NewLRU(config Config) *LRU {
	if config.MaxEntries <= 0 {
		config.MaxEntries = 100
	}
	if config.TTL <= 0 {
		config.TTL = 5 * time.Minute
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &LRU{
		config: config,
		items:  make(map[string]*list.Element),
		order:  list.New(),
	}
}

// Get returns the value for key if present and not expired.
func (c *LRU) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	ent := elem.Value.(*entry)
	if ent.expired() {
		c.removeLocked(elem)
		c.stats.Misses++
		return nil, false
	}

	c.order.MoveToFront(elem)
	c.stats.Hits++
	return ent.value, true
}

// Set stores a value under key with the configured TTL.
func (c *LRU) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry)
		ent.value = value
		ent.expiresAt = time.Now().Add(c.config.TTL)
		c.order.MoveToFront(elem)
		return
	}

	elem := c.order.PushFront(&entry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.config.TTL),
	})
	c.items[key] = elem

	for len(c.items) > c.config.MaxEntries {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.removeLocked(oldest)
		c.stats.Evictions++
		c.config.Logger.Debug("evicted cache entry",
			slog.String("key", oldest.Value.(*entry).key),
		)
	}
}

// Delete removes key from the cache.
func (c *LRU) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeLocked(elem)
	}
}

// Len returns the number of entries, expired ones included.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a snapshot of the cache statistics.
func (c *LRU) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *LRU) removeLocked(elem *list.Element) {
	ent := elem.Value.(*entry)
	c.order.Remove(elem)
	delete(c.items, ent.key)
}
