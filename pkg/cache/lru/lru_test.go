package lru

import (
	"context"
	"testing"

	"github.com/esportlab/elab/pkg/cache"
	"github.com/matryer/is"
)

func TestSetGetDelete(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	c, err := cache.New("lru", ctx, WithSize(8))
	is.NoErr(err)

	c.Set(ctx, "a", 1)
	v, ok := c.Get(ctx, "a")
	is.True(ok)
	is.Equal(v, 1)
	is.True(c.Contains(ctx, "a"))
	is.Equal(c.Len(ctx), int64(1))

	c.Delete(ctx, "a")
	_, ok = c.Get(ctx, "a")
	is.True(!ok)
}

func TestInvalidateByTag(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	c, err := cache.New("lru", ctx, WithSize(8))
	is.NoErr(err)

	c.Set(ctx, "overview:3:2025-06-09", "a", cache.WithTags("availability", "team:3"))
	c.Set(ctx, "overview:3:2025-06-16", "b", cache.WithTags("availability", "team:3"))
	c.Set(ctx, "members:3", "c", cache.WithTags("team:3"))

	// An availability write drops every cached overview but leaves the
	// member list alone.
	c.Invalidate(ctx, "availability")

	_, ok := c.Get(ctx, "overview:3:2025-06-09")
	is.True(!ok)
	_, ok = c.Get(ctx, "overview:3:2025-06-16")
	is.True(!ok)
	_, ok = c.Get(ctx, "members:3")
	is.True(ok)

	c.Invalidate(ctx, "team:3")
	_, ok = c.Get(ctx, "members:3")
	is.True(!ok)
	is.Equal(c.Len(ctx), int64(0))
}

func TestEvictKeepsTagIndexConsistent(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	c, err := cache.New("lru", ctx, WithSize(1))
	is.NoErr(err)

	c.Set(ctx, "a", 1, cache.WithTags("t"))
	c.Set(ctx, "b", 2, cache.WithTags("t"))

	// "a" was evicted by size pressure; invalidating the tag must still
	// remove "b" and not panic on the gone key.
	c.Invalidate(ctx, "t")
	_, ok := c.Get(ctx, "b")
	is.True(!ok)
}
