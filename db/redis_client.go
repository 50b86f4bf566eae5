package db

import (
	"context"
	"time"
)

// RedisClient defines the Redis operations the crawl server relies on.
type RedisClient interface {
	IncrWithExpiry(ctx context.Context, key string, ttl time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
	Close() error
}
