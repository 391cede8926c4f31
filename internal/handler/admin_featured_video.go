package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/content"
	"github.com/zeruamusic/site-api/internal/validate"
)

// GetFeaturedVideo handles GET /api/admin/featured-video. The value changes
// rarely but must reflect edits immediately, hence no-store.
func (h *AdminHandler) GetFeaturedVideo(c echo.Context) error {
	url, err := content.GetFeaturedVideoURL(c.Request().Context(), h.DB)
	if err != nil {
		return h.failRead(c, err)
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return jsonData(c, map[string]string{"url": url})
}

// PatchFeaturedVideo handles PATCH /api/admin/featured-video with a {url}
// body, writing both the current and the legacy setting key.
func (h *AdminHandler) PatchFeaturedVideo(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	url, err := validate.RequireURL(body["url"], "featuredVideoUrl")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	updated, err := content.SetFeaturedVideoURL(c.Request().Context(), h.DB, url)
	if err != nil {
		return h.failWrite(c, err)
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	return jsonData(c, map[string]string{"url": updated})
}
