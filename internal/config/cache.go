package config

import "time"

// CacheConfig controls the Redis-backed response cache applied to the
// public read endpoints. Disabled (or without a Redis client) the
// middleware is a passthrough.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadCacheConfig reads cache settings with short-TTL defaults suited to a
// small marketing site.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  getenv("CACHE_PREFIX", "cache"),
	}
}
