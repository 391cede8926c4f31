// Package middleware holds the cross-cutting HTTP concerns: a Redis-backed
// response cache for the public read endpoints and a rate limiter for the
// unauthenticated admin surface. Both degrade to passthroughs when Redis
// is unavailable.
package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/zeruamusic/site-api/internal/config"
)

// cachedResponse is the stored form of one response: status, content type
// and body. Cache-Control set by the handler is replayed so cached hits
// keep the same client caching policy.
type cachedResponse struct {
	Status       int    `json:"status"`
	ContentType  string `json:"contentType"`
	CacheControl string `json:"cacheControl,omitempty"`
	Body         []byte `json:"body"`
}

// bodyRecorder buffers the response while it streams to the client.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func cacheKey(prefix string, c echo.Context) string {
	r := c.Request()
	sum := sha1.Sum([]byte(c.Path() + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache caches successful GET responses for cfg.TTL. Anything
// other than GET, and any non-2xx response, bypasses the cache.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					h := c.Response().Header()
					if cached.ContentType != "" {
						h.Set(echo.HeaderContentType, cached.ContentType)
					}
					if cached.CacheControl != "" {
						h.Set("Cache-Control", cached.CacheControl)
					}
					h.Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}

			if rec.status >= 200 && rec.status < 300 {
				cached := cachedResponse{
					Status:       rec.status,
					ContentType:  c.Response().Header().Get(echo.HeaderContentType),
					CacheControl: c.Response().Header().Get("Cache-Control"),
					Body:         rec.buf.Bytes(),
				}
				if raw, err := json.Marshal(cached); err == nil {
					rdb.Set(ctx, key, raw, ttl)
				}
			}
			return nil
		}
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}
