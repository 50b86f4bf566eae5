package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crawl-server/db"
)

var _ db.RedisClient = (*db.MockRedisClient)(nil)
var _ db.RedisClient = (*db.CounterRedisClient)(nil)

func TestMockRedisClient_IncrWithExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC)
	client := db.NewMockRedisClient()
	client.SetClock(func() time.Time { return now })

	for want := int64(1); want <= 3; want++ {
		got, err := client.IncrWithExpiry(ctx, "counter", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	ttl, err := client.TTL(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	// independent keys
	got, err := client.IncrWithExpiry(ctx, "other", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMockRedisClient_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 22, 0, 0, 0, time.UTC)
	client := db.NewMockRedisClient()
	client.SetClock(func() time.Time { return now })

	_, err := client.IncrWithExpiry(ctx, "counter", time.Minute)
	require.NoError(t, err)

	now = now.Add(61 * time.Second)

	ttl, err := client.TTL(ctx, "counter")
	require.NoError(t, err)
	assert.True(t, ttl < 0)

	got, err := client.IncrWithExpiry(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMockRedisClient_Err(t *testing.T) {
	client := db.NewMockRedisClient()
	client.Err = errors.New("connection refused")

	_, err := client.IncrWithExpiry(context.Background(), "counter", time.Minute)
	assert.Error(t, err)
	assert.Error(t, client.Ping(context.Background()))
}
