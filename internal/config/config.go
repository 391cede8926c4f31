// Package config loads application configuration from environment
// variables. Values required for the service to function at all are
// enforced with fatal must() semantics; optional integrations (YouTube,
// Redis) degrade per-feature instead.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all runtime settings. Supabase values are required: every
// byte of persistent state lives behind that backend. The YouTube pair is
// optional at startup; the video endpoints report a typed configuration
// error when it is absent.
type Config struct {
	Env  string // application environment (dev/prod)
	Port string // HTTP port to listen on

	SupabaseURL        string // base URL of the hosted backend project
	SupabaseServiceKey string // service-role credential for REST and storage

	YouTubeAPIKey    string // Data API v3 key (optional)
	YouTubeChannelID string // channel whose uploads the video gallery lists (optional)
}

// Load reads the environment into a Config, exiting fatally when a
// required variable is missing.
func Load() Config {
	return Config{
		Env:                getenv("APP_ENV", "dev"),
		Port:               must("APP_PORT"),
		SupabaseURL:        must("SUPABASE_URL"),
		SupabaseServiceKey: must("SUPABASE_SERVICE_ROLE_KEY"),
		YouTubeAPIKey:      os.Getenv("YOUTUBE_API_KEY"),
		YouTubeChannelID:   os.Getenv("YOUTUBE_CHANNEL_ID"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatal().Str("var", key).Msg("missing required env var")
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
