package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"crawl-server/db"
)

const RATE_LIMIT_KEY_FORMAT_V1 = "rate_limit_v1:%s:%d"
const RATE_LIMIT_WINDOW = time.Minute

// Decision is the outcome of counting one request against a client's quota.
type Decision struct {
	Allowed    bool
	Count      int64
	Remaining  int
	RetryAfter time.Duration
}

// RedisRateLimitDAO counts requests per client in fixed one-minute windows.
type RedisRateLimitDAO struct {
	client db.RedisClient
	limit  int
	now    func() time.Time
}

// NewRedisRateLimitDAO initializes a RedisRateLimitDAO allowing limit requests per window.
func NewRedisRateLimitDAO(client db.RedisClient, limit int) *RedisRateLimitDAO {
	return &RedisRateLimitDAO{client: client, limit: limit, now: time.Now}
}

// Hit records one request for clientID and reports whether it is within quota.
func (dao *RedisRateLimitDAO) Hit(ctx context.Context, clientID string) (Decision, error) {
	now := dao.now()
	window := now.Unix() / int64(RATE_LIMIT_WINDOW/time.Second)
	key := fmt.Sprintf(RATE_LIMIT_KEY_FORMAT_V1, clientID, window)

	count, err := dao.client.IncrWithExpiry(ctx, key, RATE_LIMIT_WINDOW)
	if err != nil {
		return Decision{}, errors.Wrap(err, "[RedisRateLimitDAO] failed to count request")
	}

	windowEnd := time.Unix((window+1)*int64(RATE_LIMIT_WINDOW/time.Second), 0)
	decision := Decision{
		Allowed:   count <= int64(dao.limit),
		Count:     count,
		Remaining: dao.limit - int(count),
	}
	if decision.Remaining < 0 {
		decision.Remaining = 0
	}
	if !decision.Allowed {
		decision.RetryAfter = windowEnd.Sub(now)
	}
	return decision, nil
}

// SetClock replaces the time source used to pick the counting window.
func (dao *RedisRateLimitDAO) SetClock(now func() time.Time) {
	dao.now = now
}
