package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zeruamusic/site-api/internal/config"
	"github.com/zeruamusic/site-api/internal/content"
	"github.com/zeruamusic/site-api/internal/handler"
	"github.com/zeruamusic/site-api/internal/middleware"
	"github.com/zeruamusic/site-api/internal/router"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/youtube"
)

func main() {
	// .env is a convenience for local runs; in production the variables
	// come from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	if err != nil {
		log.Fatal().Err(err).Msg("backend gateway init failed")
	}

	var videos *youtube.Client
	if cfg.YouTubeAPIKey != "" && cfg.YouTubeChannelID != "" {
		videos, err = youtube.NewClient(context.Background(), cfg.YouTubeAPIKey, cfg.YouTubeChannelID)
		if err != nil {
			log.Fatal().Err(err).Msg("youtube client init failed")
		}
	} else {
		log.Warn().Msg("YouTube credentials not set; video listing disabled")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; response cache and rate limiting disabled")
	}

	reader := content.NewReader(db, log.Logger)
	admin := handler.NewAdminHandler(db, log.Logger)
	public := handler.NewPublicHandler(reader, videos, log.Logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	router.RegisterRoutes(e)
	router.RegisterAdmin(e, admin, middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb))
	router.RegisterPublic(e, public, middleware.NewResponseCache(config.LoadCacheConfig(), rdb))

	// The admin API ships without authentication. Anyone who can reach it
	// can rewrite all site content; do not expose it beyond trusted
	// networks.
	log.Warn().Msg("admin API is UNAUTHENTICATED; restrict access at the network layer")

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
