package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/corebeautylab/salon-scheduler/internal/config"
)

// Cache wraps the redis client for the two short-lived concerns
// this service has: the stats cache and the logout token blacklist.
type Cache struct {
	client *redis.Client
}

func New(cfg *config.Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// --------------------------------------------------
// Token blacklist (logout)
// --------------------------------------------------

const blacklistPrefix = "session:blacklist:"

// Blacklist marks a session token as revoked until it would
// have expired anyway. Redis TTL handles the cleanup.
func (c *Cache) Blacklist(ctx context.Context, token string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, blacklistPrefix+token, "1", ttl).Err()
}

func (c *Cache) IsBlacklisted(ctx context.Context, token string) bool {
	n, err := c.client.Exists(ctx, blacklistPrefix+token).Result()
	return err == nil && n > 0
}
