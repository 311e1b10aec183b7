package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisUnreadCache keeps per-user unread totals behind a short TTL. Stale
// entries are bounded by the TTL and every mutation path invalidates.
type RedisUnreadCache struct {
	client *redis.Client
}

func NewRedisUnreadCache(client *redis.Client) *RedisUnreadCache {
	return &RedisUnreadCache{client: client}
}

func unreadKey(userID uuid.UUID) string {
	return "chat:unread:" + userID.String()
}

func (c *RedisUnreadCache) Get(ctx context.Context, userID uuid.UUID) (int, bool, error) {
	raw, err := c.client.Get(ctx, unreadKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, false, nil
	}
	return count, true, nil
}

func (c *RedisUnreadCache) Set(ctx context.Context, userID uuid.UUID, count int, ttl time.Duration) error {
	return c.client.Set(ctx, unreadKey(userID), strconv.Itoa(count), ttl).Err()
}

func (c *RedisUnreadCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, unreadKey(userID)).Err()
}
