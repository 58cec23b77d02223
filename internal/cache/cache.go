package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small JSON read-through cache for hot list reads. Writes to a
// collection invalidate its keys on the same request path, so a read issued
// after a write always observes the write (read-your-writes); the short TTL
// only bounds staleness across processes.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetJSON loads key into dest, returning false on miss or any redis error
// (a failing cache must never fail a read).
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores val under key with the cache TTL. Errors are dropped.
func (c *Cache) SetJSON(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, c.ttl)
}

// InvalidateCollection drops every cached key of one collection prefix.
func (c *Cache) InvalidateCollection(ctx context.Context, collection string) {
	iter := c.rdb.Scan(ctx, 0, "talentflow:cache:"+collection+":*", 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}

// Key builds a namespaced cache key for a collection and variant.
func Key(collection, variant string) string {
	return "talentflow:cache:" + collection + ":" + variant
}
