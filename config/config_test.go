package config

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.False(t, cfg.UpstreamConfigured())
	assert.False(t, cfg.RateLimitEnabled())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envFrom(map[string]string{
		"GOOGLE_MAPS_API_KEY":      "key-123",
		"PORT":                     "9090",
		"ENV":                      "dev",
		"REDIS_ADDRESS":            "localhost:6379",
		"RATE_LIMIT_PER_MINUTE":    "5",
		"UPSTREAM_TIMEOUT_SECONDS": "3",
		"TRUSTED_PROXIES":          "10.0.0.1, 10.0.0.2,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "key-123", cfg.GoogleMapsAPIKey)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.True(t, cfg.UpstreamConfigured())
	assert.True(t, cfg.RateLimitEnabled())
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestUpstreamAvailable(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.UpstreamAvailable())

	cfg.Env = "dev"
	assert.True(t, cfg.UpstreamAvailable())

	cfg.Env = DEFAULT_ENV
	cfg.GoogleMapsAPIKey = "key-123"
	assert.True(t, cfg.UpstreamAvailable())
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(envFrom(map[string]string{"PORT": "eighty"}))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	f, err := ioutil.TempFile("", "crawl*.yaml")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	_, err = f.WriteString("env: dev\nport: 7070\ngoogle_maps_api_key: from-file\nrate_limit_per_minute: 0\n")
	require.NoError(t, err)
	f.Close()

	cfg := Default()
	require.NoError(t, cfg.loadFile(f.Name()))

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "from-file", cfg.GoogleMapsAPIKey)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	// untouched keys keep their defaults
	assert.Equal(t, PLACES_ENDPOINT_BASE_V1, cfg.PlacesBaseURL)
}
