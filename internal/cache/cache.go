// Package cache memoizes analysis results per normalized comment text.
// Feedback forms repeat short answers constantly ("okay lang", "maganda"),
// so a small TTL cache absorbs most of the scoring work.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/campuspulse/sentilex/internal/models"
)

const (
	DefaultCapacity = 1000
	DefaultTTL      = 30 * time.Minute
)

type entry struct {
	key        string
	result     models.AnalysisResult
	insertedAt time.Time
}

// Cache is a capacity-bounded TTL cache. Reads and writes are guarded by a
// single mutex; eviction removes expired entries first and then the oldest
// insertion.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List // front = oldest insertion
	capacity int
	ttl      time.Duration
	clock    clockwork.Clock
}

// New builds a cache with the given capacity and TTL. Non-positive values
// fall back to the defaults.
func New(capacity int, ttl time.Duration) *Cache {
	return NewWithClock(capacity, ttl, clockwork.NewRealClock())
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock(capacity int, ttl time.Duration, clock clockwork.Clock) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
		clock:    clock,
	}
}

// Get returns the cached result for key while it is still fresh. Expired
// entries are dropped on access.
func (c *Cache) Get(key string) (models.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return models.AnalysisResult{}, false
	}

	e := el.Value.(*entry)
	if c.clock.Since(e.insertedAt) >= c.ttl {
		c.removeLocked(el)
		return models.AnalysisResult{}, false
	}
	return e.result, true
}

// Set stores a result under key, evicting the oldest entry when the cache
// is full. Re-setting an existing key refreshes its insertion time.
func (c *Cache) Set(key string, result models.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.result = result
		e.insertedAt = c.clock.Now()
		c.order.MoveToBack(el)
		return
	}

	for c.order.Len() >= c.capacity {
		c.removeLocked(c.order.Front())
	}

	c.entries[key] = c.order.PushBack(&entry{
		key:        key,
		result:     result,
		insertedAt: c.clock.Now(),
	})
}

// Len reports the number of stored entries, counting stale ones not yet
// dropped.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) removeLocked(el *list.Element) {
	if el == nil {
		return
	}
	delete(c.entries, el.Value.(*entry).key)
	c.order.Remove(el)
}
