// Package config provides configuration loading and validation for the
// realtime config sidecar. Configuration is layered:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Gateway   ClientConfig    `koanf:"gateway"`
	Cache     CacheConfig     `koanf:"cache"`
	Resolver  ResolverConfig  `koanf:"resolver"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the outbound HTTP client that talks to
// the remote config gateway.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RequestBudget bounds how long one gateway call can take end to end: every
// attempt running to Timeout plus the longest backoff, jitter included,
// between attempts.
func (c ClientConfig) RequestBudget() time.Duration {
	attempts := max(c.Retry.MaxAttempts, 1)
	backoff := c.Retry.MaxInterval + c.Retry.MaxInterval/4
	return time.Duration(attempts)*c.Timeout + time.Duration(attempts-1)*backoff
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// Cache backends.
const (
	CacheBackendMemory    = "memory"
	CacheBackendRedis     = "redis"
	CacheBackendRistretto = "ristretto"
)

// CacheConfig selects and tunes the cache store.
type CacheConfig struct {
	Backend   string          `koanf:"backend"`
	Namespace string          `koanf:"namespace"`
	RecordTTL time.Duration   `koanf:"record_ttl"`
	Redis     RedisConfig     `koanf:"redis"`
	Memory    MemoryConfig    `koanf:"memory"`
	Ristretto RistrettoConfig `koanf:"ristretto"`
}

// RedisConfig holds connection settings for the Redis backend.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// MemoryConfig holds settings for the in-process TTL cache backend.
// A zero Capacity means unbounded.
type MemoryConfig struct {
	Capacity uint64 `koanf:"capacity"`
}

// RistrettoConfig holds admission/eviction settings for the ristretto backend.
type RistrettoConfig struct {
	NumCounters int64 `koanf:"num_counters"`
	MaxCost     int64 `koanf:"max_cost"`
}

// ResolverConfig tunes the config resolver.
type ResolverConfig struct {
	// RefreshInterval is the minimum age of an account's refresh marker
	// before a cache hit schedules a background refresh.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	// WriteConcurrency bounds the number of concurrent cache writes when a
	// refresh fans records out into per-key entries.
	WriteConcurrency int `koanf:"write_concurrency"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
