package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CatalogStorage 缓存礼品卡目录查询结果
type CatalogStorage struct {
	redis *redis.Client
}

func NewCatalogStorage(rds *redis.Client) *CatalogStorage {
	return &CatalogStorage{redis: rds}
}

func (c *CatalogStorage) key(query string, limit int) string {
	return fmt.Sprintf("giftspin:catalog:%s:%d", query, limit)
}

// Get returns false on a cache miss.
func (c *CatalogStorage) Get(ctx context.Context, query string, limit int, out any) (bool, error) {
	raw, err := c.redis.Get(ctx, c.key(query, limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *CatalogStorage) Set(ctx context.Context, query string, limit int, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.key(query, limit), raw, ttl).Err()
}
