package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRistrettoNumCounters = 100_000
	defaultRistrettoMaxCost     = 10_000

	defaultWriteConcurrency = 8
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"gateway.base_url":                        "http://localhost:8081",
		"gateway.timeout":                         "5s",
		"gateway.retry.max_attempts":              defaultRetryMaxAttempts,
		"gateway.retry.initial_interval":          "100ms",
		"gateway.retry.max_interval":              "2s",
		"gateway.retry.multiplier":                defaultRetryMultiplier,
		"gateway.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"gateway.circuit_breaker.timeout":         "30s",
		"gateway.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"gateway.rate_limit.requests_per_second":  0,
		"gateway.rate_limit.burst_size":           0,

		"cache.backend":                CacheBackendMemory,
		"cache.namespace":              "realtimeconfig",
		"cache.record_ttl":             "0s",
		"cache.redis.addr":             "localhost:6379",
		"cache.redis.password":         "",
		"cache.redis.db":               0,
		"cache.memory.capacity":        0,
		"cache.ristretto.num_counters": defaultRistrettoNumCounters,
		"cache.ristretto.max_cost":     defaultRistrettoMaxCost,

		"resolver.refresh_interval":  "30s",
		"resolver.write_concurrency": defaultWriteConcurrency,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "realtime-config",
	}
}
