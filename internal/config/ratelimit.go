package config

import "time"

// RateLimitConfig controls the fixed-window limiter in front of the admin
// surface. The admin API ships without authentication, so the limiter is
// the only brake on an abusive caller.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window, per client IP
	Window  time.Duration // window length
	Prefix  string        // Redis key prefix
}

// LoadRateLimitConfig reads limiter settings, clamping nonsense values to
// usable ones.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_LIMIT", 60),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
