package db

import (
	"context"
	"sync"
	"time"
)

// MockRedisClient simulates the counter operations of Redis in memory.
type MockRedisClient struct {
	counters map[string]int64
	expiries map[string]time.Time
	mu       sync.Mutex
	now      func() time.Time

	// Err, when set, is returned by every operation.
	Err error
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		counters: make(map[string]int64),
		expiries: make(map[string]time.Time),
		now:      time.Now,
	}
}

// SetClock replaces the time source used for expiries.
func (m *MockRedisClient) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MockRedisClient) IncrWithExpiry(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.evictIfExpired(key)
	m.counters[key]++
	m.expiries[key] = m.now().Add(ttl)
	return m.counters[key], nil
}

func (m *MockRedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	m.evictIfExpired(key)
	expiry, ok := m.expiries[key]
	if !ok {
		return -2 * time.Second, nil
	}
	return expiry.Sub(m.now()), nil
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping(ctx context.Context) error {
	return m.Err
}

func (m *MockRedisClient) Close() error {
	return nil
}

func (m *MockRedisClient) evictIfExpired(key string) {
	if expiry, ok := m.expiries[key]; ok && !m.now().Before(expiry) {
		delete(m.expiries, key)
		delete(m.counters, key)
	}
}
