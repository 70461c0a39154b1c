package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "tasks:list:"

// TaskCache caches each user's task list in Redis, invalidated on write.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list or nil on miss.
func (c *TaskCache) GetList(ctx context.Context, userID string) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, keyListPrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the user's list.
func (c *TaskCache) SetList(ctx context.Context, userID string, list []dom.Task) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyListPrefix+userID, b, c.ttl).Err()
}

// Invalidate removes the user's cached list (cache invalidation on write).
func (c *TaskCache) Invalidate(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, keyListPrefix+userID).Err()
}
