package ratelimit

import (
	"time"
)

// Config holds rate limiter configuration.
type Config struct {
	// RedisAddr is the Redis server address (e.g. "localhost:6379").
	RedisAddr string

	// RedisPassword is the Redis authentication password (optional).
	RedisPassword string

	// RedisDB is the Redis database number.
	RedisDB int

	// DefaultLimit applies to services without a specific limit.
	DefaultLimit int

	// DefaultWindow is the time window for the default limit.
	DefaultWindow time.Duration

	// ServiceLimits maps service names to their specific limits. The
	// credential services (signup, login) get tighter limits than the
	// default to slow down guessing.
	ServiceLimits map[string]ServiceLimit

	// KeyPrefix is the prefix for Redis keys.
	KeyPrefix string

	// ClientIDHeader is the header used to attribute requests to a
	// client. Requests without one share the fallback bucket.
	ClientIDHeader string

	// FallbackClientID is used when no client id is present.
	FallbackClientID string
}

// ServiceLimit defines the rate limit for a specific service.
type ServiceLimit struct {
	Limit  int
	Window time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RedisAddr:        "localhost:6379",
		RedisPassword:    "",
		RedisDB:          0,
		DefaultLimit:     100,
		DefaultWindow:    time.Minute,
		ServiceLimits:    make(map[string]ServiceLimit),
		KeyPrefix:        "ratelimit:",
		ClientIDHeader:   "X-Client-ID",
		FallbackClientID: "anonymous",
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithRedisAddr sets the Redis server address.
func WithRedisAddr(addr string) Option {
	return func(c *Config) {
		c.RedisAddr = addr
	}
}

// WithRedisPassword sets the Redis authentication password.
func WithRedisPassword(password string) Option {
	return func(c *Config) {
		c.RedisPassword = password
	}
}

// WithRedisDB sets the Redis database number.
func WithRedisDB(db int) Option {
	return func(c *Config) {
		c.RedisDB = db
	}
}

// WithDefaultLimit sets the default limit and window.
func WithDefaultLimit(limit int, window time.Duration) Option {
	return func(c *Config) {
		c.DefaultLimit = limit
		c.DefaultWindow = window
	}
}

// WithServiceLimit sets a limit for a specific service.
func WithServiceLimit(service string, limit int, window time.Duration) Option {
	return func(c *Config) {
		c.ServiceLimits[service] = ServiceLimit{Limit: limit, Window: window}
	}
}

// WithKeyPrefix sets the Redis key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *Config) {
		c.KeyPrefix = prefix
	}
}
