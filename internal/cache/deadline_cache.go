package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
)

const (
	keyList = "deadline:list"
	keyPlan = "plan:tomorrow"
)

// Cache keeps the deadline list and the plan document in Redis. Both are
// invalidated together on any write: deleting a deadline changes the plan
// view too, because dangling ids are filtered out at read time.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Cache with the given TTL.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached deadline list, or nil on miss.
func (c *Cache) GetList(ctx context.Context) ([]dom.Deadline, error) {
	b, err := c.rdb.Get(ctx, keyList).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Deadline
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the deadline list.
func (c *Cache) SetList(ctx context.Context, list []dom.Deadline) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyList, b, c.ttl).Err()
}

// GetPlan returns the cached plan, or nil on miss.
func (c *Cache) GetPlan(ctx context.Context) (*dom.Plan, error) {
	b, err := c.rdb.Get(ctx, keyPlan).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p dom.Plan
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPlan stores the plan document.
func (c *Cache) SetPlan(ctx context.Context, p dom.Plan) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyPlan, b, c.ttl).Err()
}

// InvalidateAll drops all cached views.
func (c *Cache) InvalidateAll(ctx context.Context) error {
	return c.rdb.Del(ctx, keyList, keyPlan).Err()
}
