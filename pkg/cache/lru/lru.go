// Package lru provides an in-memory LRU cache driver with entry TTLs.
package lru

import (
	"context"
	"sync"
	"time"

	"github.com/esportlab/elab/pkg/cache"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	cache.Register("lru", newCache)
}

// Cache is a memory cache that uses a LRU cache policy with per-cache TTL.
type Cache struct {
	cache   *expirable.LRU[string, cache.Item]
	onEvict func(key string, value any)
	size    int
	ttl     time.Duration

	mtx  sync.Mutex
	tags map[string]map[string]struct{}
}

var _ cache.Cache = (*Cache)(nil)

// WithSize sets the cache size.
func WithSize(s int) cache.Option {
	return func(c cache.Cache) {
		ca := c.(*Cache)
		ca.size = s
	}
}

// WithTTL sets how long entries stay fresh. Zero means no expiry.
func WithTTL(ttl time.Duration) cache.Option {
	return func(c cache.Cache) {
		ca := c.(*Cache)
		ca.ttl = ttl
	}
}

// WithEvictCallback sets the eviction callback.
func WithEvictCallback(cb func(key string, value any)) cache.Option {
	return func(c cache.Cache) {
		ca := c.(*Cache)
		ca.onEvict = cb
	}
}

// newCache returns a new Cache.
func newCache(_ context.Context, opts ...cache.Option) (cache.Cache, error) {
	c := &Cache{
		tags: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.size <= 0 {
		c.size = 1
	}

	c.cache = expirable.NewLRU[string, cache.Item](c.size, func(key string, item cache.Item) {
		c.untag(key, item.Tags)
		if c.onEvict != nil {
			c.onEvict(key, item.Value)
		}
	}, c.ttl)

	return c, nil
}

func (c *Cache) untag(key string, tags []string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	for _, t := range tags {
		delete(c.tags[t], key)
		if len(c.tags[t]) == 0 {
			delete(c.tags, t)
		}
	}
}

// Delete implements cache.Cache.
func (c *Cache) Delete(_ context.Context, key string) {
	c.cache.Remove(key)
}

// Get implements cache.Cache.
func (c *Cache) Get(_ context.Context, key string) (value any, ok bool) {
	item, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return item.Value, true
}

// Keys implements cache.Cache.
func (c *Cache) Keys(_ context.Context) []string {
	return c.cache.Keys()
}

// Set implements cache.Cache.
func (c *Cache) Set(_ context.Context, key string, val any, opts ...cache.ItemOption) {
	item := cache.Item{Value: val}
	for _, opt := range opts {
		opt(&item)
	}

	c.mtx.Lock()
	for _, t := range item.Tags {
		if c.tags[t] == nil {
			c.tags[t] = make(map[string]struct{})
		}
		c.tags[t][key] = struct{}{}
	}
	c.mtx.Unlock()

	c.cache.Add(key, item)
}

// Len implements cache.Cache.
func (c *Cache) Len(_ context.Context) int64 {
	return int64(c.cache.Len())
}

// Contains implements cache.Cache.
func (c *Cache) Contains(_ context.Context, key string) bool {
	return c.cache.Contains(key)
}

// Invalidate implements cache.Cache.
func (c *Cache) Invalidate(_ context.Context, tags ...string) {
	c.mtx.Lock()
	var keys []string
	for _, t := range tags {
		for k := range c.tags[t] {
			keys = append(keys, k)
		}
	}
	c.mtx.Unlock()

	for _, k := range keys {
		c.cache.Remove(k)
	}
}
