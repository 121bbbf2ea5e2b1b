// Package cache provides the in-process memoization layer for computed
// summaries. The engine itself is pure; caching its output is a collaborator
// concern, so this lives outside the summary package on purpose.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a size-bounded cache with per-entry TTL. Expired entries are
// evicted lazily on access and on Set when the cache is full.
type LRU[T any] struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	entries map[string]*list.Element
	recency *list.List
}

type entry[T any] struct {
	key       string
	value     T
	expiresAt time.Time
}

// NewLRU creates a cache holding at most maxSize entries for at most ttl.
// A non-positive ttl disables expiry.
func NewLRU[T any](maxSize int, ttl time.Duration) *LRU[T] {
	return &LRU[T]{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]*list.Element),
		recency: list.New(),
	}
}

func (c *LRU[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	el, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	e := el.Value.(*entry[T])
	if c.expired(e) {
		c.remove(el)
		return zero, false
	}
	c.recency.MoveToFront(el)
	return e.value, true
}

func (c *LRU[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry[T])
		e.value = value
		e.expiresAt = c.deadline()
		c.recency.MoveToFront(el)
		return
	}
	for c.maxSize > 0 && len(c.entries) >= c.maxSize {
		oldest := c.recency.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest)
	}
	el := c.recency.PushFront(&entry[T]{key: key, value: value, expiresAt: c.deadline()})
	c.entries[key] = el
}

// Invalidate drops the entry for key, if present. Called whenever the
// underlying ledger changes so a stale summary is never served.
func (c *LRU[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.remove(el)
	}
}

// Purge drops every entry.
func (c *LRU[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.recency.Init()
}

func (c *LRU[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *LRU[T]) expired(e *entry[T]) bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

func (c *LRU[T]) deadline() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}

func (c *LRU[T]) remove(el *list.Element) {
	e := el.Value.(*entry[T])
	delete(c.entries, e.key)
	c.recency.Remove(el)
}
