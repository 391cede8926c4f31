// Package handler implements the HTTP surface: the unauthenticated admin
// console API under /api/admin and the public read-only endpoints under
// /api. Every response is a {data} or {error} JSON envelope.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/zeruamusic/site-api/internal/content"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/validate"
	"github.com/zeruamusic/site-api/internal/youtube"
)

// AdminHandler serves the content-editor CRUD endpoints.
type AdminHandler struct {
	DB  *supabase.Client
	Log zerolog.Logger
}

// NewAdminHandler wires an AdminHandler over the backend gateway.
func NewAdminHandler(db *supabase.Client, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{DB: db, Log: log}
}

// PublicHandler serves the read-only endpoints backing the public pages.
type PublicHandler struct {
	Reader  *content.Reader
	YouTube *youtube.Client // nil until YouTube credentials are configured
	Log     zerolog.Logger
}

// NewPublicHandler wires a PublicHandler. videos may be nil when the
// YouTube integration is not configured; the video endpoint then reports
// the missing configuration.
func NewPublicHandler(reader *content.Reader, videos *youtube.Client, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{Reader: reader, YouTube: videos, Log: log}
}

// jsonError writes the {error} envelope with the given status.
func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// jsonData writes the {data} envelope.
func jsonData(c echo.Context, v any) error {
	return c.JSON(http.StatusOK, map[string]any{"data": v})
}

// jsonOK acknowledges a delete or reorder with {ok:true}.
func jsonOK(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// failWrite maps an error from a mutating call: validation failures are the
// caller's to fix (400), everything else is a backend problem (500) carrying
// the upstream message verbatim.
func (h *AdminHandler) failWrite(c echo.Context, err error) error {
	var fieldErr *validate.FieldError
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErr) || errors.As(err, &fieldErrs) {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	h.Log.Error().Err(err).Str("path", c.Path()).Msg("admin write failed")
	return jsonError(c, http.StatusInternalServerError, err.Error())
}

// failRead maps an error from a read call to a 500 envelope.
func (h *AdminHandler) failRead(c echo.Context, err error) error {
	h.Log.Error().Err(err).Str("path", c.Path()).Msg("admin read failed")
	return jsonError(c, http.StatusInternalServerError, err.Error())
}

// parseBody decodes an untyped JSON object body.
func parseBody(c echo.Context) (map[string]any, error) {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return nil, &validate.FieldError{Field: "body", Message: "must be valid JSON"}
	}
	return body, nil
}

// orderIndexOf coerces the optional order_index field, accepting JSON
// numbers and numeric strings; anything else defaults to 0.
func orderIndexOf(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

// coerceBool applies loose truthiness rather than validating: absent,
// false, 0 and "" are false, anything else is true. The admin forms have
// always submitted is_featured this way.
func coerceBool(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
