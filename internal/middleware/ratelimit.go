package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/zeruamusic/site-api/internal/config"
)

// fixedWindowScript counts a hit and arms the window TTL in the same call,
// so a crash between the two steps can never leave a counter that lives
// forever.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count`)

// NewRateLimit applies a fixed-window per-IP limit, rejecting with 429 once
// the count passes cfg.Limit. Redis errors fail open so a cache outage does
// not take the API down.
func NewRateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s", cfg.Prefix, c.RealIP())

			count, err := fixedWindowScript.Run(ctx, rdb, []string{key}, cfg.Window.Milliseconds()).Int64()
			if err != nil {
				return next(c)
			}
			if count > int64(cfg.Limit) {
				retryAfter, err := rdb.TTL(ctx, key).Result()
				if err == nil && retryAfter > 0 {
					c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
				}
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
