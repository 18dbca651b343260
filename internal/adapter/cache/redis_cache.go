package cache

import (
	"context"
	"errors"
	"time"

	"donations_core/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs pending order associations and provider access tokens
// with Redis, so they survive restarts and are shared across instances.
type RedisCache struct {
	client redis.Cmdable
	prefix string
}

var _ interfaces.ICache = (*RedisCache)(nil)

func NewRedisCache(client redis.Cmdable, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}

// Take uses GETDEL so concurrent callers cannot both consume the same key.
func (c *RedisCache) Take(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.GetDel(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}
