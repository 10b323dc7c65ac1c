// AngelaMos | 2026
// cache.go

package leader

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyAll    = "leaders:all"
	cacheKeyByID   = "leaders:id:%d"
	cacheKeySearch = "leaders:search:%s"
)

// Cache holds serialized leader data so hot read paths skip Postgres.
// Implementations must treat misses and backend failures identically:
// return ok=false and let the caller fall through to the database.
type Cache interface {
	GetLeaders(ctx context.Context, key string) ([]Leader, bool)
	SetLeaders(ctx context.Context, key string, leaders []Leader)
	GetLeader(ctx context.Context, id int64) (*Leader, bool)
	SetLeader(ctx context.Context, l *Leader)
	Invalidate(ctx context.Context, id int64)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetLeaders(ctx context.Context, key string) ([]Leader, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var leaders []Leader
	if err := json.Unmarshal(data, &leaders); err != nil {
		return nil, false
	}
	return leaders, true
}

func (c *RedisCache) SetLeaders(ctx context.Context, key string, leaders []Leader) {
	data, err := json.Marshal(leaders)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, c.ttl)
}

func (c *RedisCache) GetLeader(ctx context.Context, id int64) (*Leader, bool) {
	data, err := c.client.Get(ctx, fmt.Sprintf(cacheKeyByID, id)).Bytes()
	if err != nil {
		return nil, false
	}

	var l Leader
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, false
	}
	return &l, true
}

func (c *RedisCache) SetLeader(ctx context.Context, l *Leader) {
	data, err := json.Marshal(l)
	if err != nil {
		return
	}
	c.client.Set(ctx, fmt.Sprintf(cacheKeyByID, l.ID), data, c.ttl)
}

// Invalidate drops the single-leader entry, the full listing, and any
// cached search results. Search keys are pattern-scanned because the
// query fragment is part of the key.
func (c *RedisCache) Invalidate(ctx context.Context, id int64) {
	c.client.Del(ctx, fmt.Sprintf(cacheKeyByID, id), cacheKeyAll)

	iter := c.client.Scan(ctx, 0, "leaders:search:*", 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// NoopCache backs deployments without Redis. Every lookup misses.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) GetLeaders(context.Context, string) ([]Leader, bool) { return nil, false }
func (NoopCache) SetLeaders(context.Context, string, []Leader)       {}
func (NoopCache) GetLeader(context.Context, int64) (*Leader, bool)   { return nil, false }
func (NoopCache) SetLeader(context.Context, *Leader)                 {}
func (NoopCache) Invalidate(context.Context, int64)                  {}
