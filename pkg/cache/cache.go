// Package cache provides the response cache used by the data-access layer.
// Entries carry invalidation tags; a successful mutation invalidates exactly
// the tags it affects.
package cache

import (
	"context"
)

// ItemOption is an option for setting cache items.
type ItemOption func(*Item)

// Item is a cache item with its invalidation tags.
type Item struct {
	Value any
	Tags  []string
}

// WithTags attaches invalidation tags to an item.
func WithTags(tags ...string) ItemOption {
	return func(i *Item) {
		i.Tags = append(i.Tags, tags...)
	}
}

// Option is an option for creating new cache.
type Option func(Cache)

// Cache is a caching interface.
type Cache interface {
	Get(ctx context.Context, key string) (value any, ok bool)
	Set(ctx context.Context, key string, val any, opts ...ItemOption)
	Keys(ctx context.Context) []string
	Len(ctx context.Context) int64
	Contains(ctx context.Context, key string) bool
	Delete(ctx context.Context, key string)
	// Invalidate removes every entry tagged with any of the given tags.
	Invalidate(ctx context.Context, tags ...string)
}
