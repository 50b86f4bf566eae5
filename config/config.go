package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Server config
const DEFAULT_PORT = 8080
const DEFAULT_ENV = "prod"
const DEFAULT_CORS_ALLOWED_ORIGIN = "*"
const SHUTDOWN_TIMEOUT_SECONDS = 5

// Google Maps Platform endpoints
const GEOCODING_ENDPOINT_BASE = "https://maps.googleapis.com/maps/api"
const PLACES_ENDPOINT_BASE_V1 = "https://places.googleapis.com/v1"
const ROUTES_ENDPOINT_BASE_V2 = "https://routes.googleapis.com/directions/v2"
const UPSTREAM_TIMEOUT_SECONDS = 10

// Redis Config (rate limiting only)
const REDIS_DB = 0
const RATE_LIMIT_PER_MINUTE = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GEOCODE_RESPONSE_RESOURCE = "geocode_response.json"
const SEARCH_TEXT_RESPONSE_RESOURCE = "search_text_response.json"
const PLACE_DETAILS_RESOURCE = "place_details.json"
const COMPUTE_ROUTES_RESPONSE_RESOURCE = "compute_routes_response.json"

// Environment variables
const CONFIG_FILE_ENV = "CRAWL_CONFIG_FILE"

// Config is the runtime configuration of the crawl server.
type Config struct {
	Env               string        `yaml:"env"`
	Port              int           `yaml:"port"`
	GoogleMapsAPIKey  string        `yaml:"google_maps_api_key"`
	GeocodingBaseURL  string        `yaml:"geocoding_base_url"`
	PlacesBaseURL     string        `yaml:"places_base_url"`
	RoutesBaseURL     string        `yaml:"routes_base_url"`
	UpstreamTimeout   time.Duration `yaml:"upstream_timeout"`
	CORSAllowedOrigin string        `yaml:"cors_allowed_origin"`
	TrustedProxies    []string      `yaml:"trusted_proxies"`

	RedisAddress       string `yaml:"redis_address"`
	RedisPassword      string `yaml:"redis_password"`
	RedisDB            int    `yaml:"redis_db"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Env:                DEFAULT_ENV,
		Port:               DEFAULT_PORT,
		GeocodingBaseURL:   GEOCODING_ENDPOINT_BASE,
		PlacesBaseURL:      PLACES_ENDPOINT_BASE_V1,
		RoutesBaseURL:      ROUTES_ENDPOINT_BASE_V2,
		UpstreamTimeout:    UPSTREAM_TIMEOUT_SECONDS * time.Second,
		CORSAllowedOrigin:  DEFAULT_CORS_ALLOWED_ORIGIN,
		RedisDB:            REDIS_DB,
		RateLimitPerMinute: RATE_LIMIT_PER_MINUTE,
	}
}

// Load builds the config from defaults, the optional YAML file named by
// CRAWL_CONFIG_FILE and then environment variables, in that order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(CONFIG_FILE_ENV); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpstreamConfigured reports whether an upstream credential is present.
func (c *Config) UpstreamConfigured() bool {
	return c.GoogleMapsAPIKey != ""
}

// UpstreamAvailable reports whether upstream-dependent routes can be served.
// Outside prod the fixture mock answers and needs no credential.
func (c *Config) UpstreamAvailable() bool {
	return c.UpstreamConfigured() || c.Env != DEFAULT_ENV
}

// RateLimitEnabled reports whether requests should be counted in Redis.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddress != "" && c.RateLimitPerMinute > 0
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) loadFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, v, err)
		}
		*dst = n
		return nil
	}

	str("ENV", &c.Env)
	str("GOOGLE_MAPS_API_KEY", &c.GoogleMapsAPIKey)
	str("GEOCODING_BASE_URL", &c.GeocodingBaseURL)
	str("PLACES_BASE_URL", &c.PlacesBaseURL)
	str("ROUTES_BASE_URL", &c.RoutesBaseURL)
	str("CORS_ALLOWED_ORIGIN", &c.CORSAllowedOrigin)
	str("REDIS_ADDRESS", &c.RedisAddress)
	str("REDIS_PASSWORD", &c.RedisPassword)

	if v, ok := lookup("TRUSTED_PROXIES"); ok && v != "" {
		c.TrustedProxies = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.TrustedProxies = append(c.TrustedProxies, p)
			}
		}
	}

	if err := num("PORT", &c.Port); err != nil {
		return err
	}
	if err := num("REDIS_DB", &c.RedisDB); err != nil {
		return err
	}
	if err := num("RATE_LIMIT_PER_MINUTE", &c.RateLimitPerMinute); err != nil {
		return err
	}

	timeoutSeconds := int(c.UpstreamTimeout / time.Second)
	if err := num("UPSTREAM_TIMEOUT_SECONDS", &timeoutSeconds); err != nil {
		return err
	}
	if timeoutSeconds > 0 {
		c.UpstreamTimeout = time.Duration(timeoutSeconds) * time.Second
	}
	return nil
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
