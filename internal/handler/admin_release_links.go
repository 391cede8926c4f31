package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/validate"
)

func parseReleaseLink(body map[string]any) (model.ReleasePlatformLink, error) {
	var v validate.Collector
	row := model.ReleasePlatformLink{
		ReleaseID:  v.String(body["release_id"], "release_id", 0, 100),
		Platform:   v.String(body["platform"], "platform", 0, 80),
		URL:        v.URL(body["url"], "url"),
		OrderIndex: orderIndexOf(body["order_index"]),
	}
	return row, v.Err()
}

// ListReleaseLinks handles GET /api/admin/release-platform-links, optionally
// filtered to one release with ?release_id=.
func (h *AdminHandler) ListReleaseLinks(c echo.Context) error {
	q := orderedQuery()
	if releaseID := c.QueryParam("release_id"); releaseID != "" {
		q.Filters = map[string]string{"release_id": releaseID}
	}
	rows, err := supabase.FetchRows[model.ReleasePlatformLink](c.Request().Context(), h.DB, model.TableReleasePlatformLinks, q)
	if err != nil {
		return h.failRead(c, err)
	}
	return jsonData(c, rows)
}

// CreateReleaseLink handles POST /api/admin/release-platform-links.
func (h *AdminHandler) CreateReleaseLink(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseReleaseLink(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.InsertRow[model.ReleasePlatformLink](c.Request().Context(), h.DB, model.TableReleasePlatformLinks, payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// UpdateReleaseLink handles PATCH /api/admin/release-platform-links/:id.
func (h *AdminHandler) UpdateReleaseLink(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseReleaseLink(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.UpdateRow[model.ReleasePlatformLink](c.Request().Context(), h.DB, model.TableReleasePlatformLinks, c.Param("id"), payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// DeleteReleaseLink handles DELETE /api/admin/release-platform-links/:id.
func (h *AdminHandler) DeleteReleaseLink(c echo.Context) error {
	if err := h.DB.DeleteRow(c.Request().Context(), model.TableReleasePlatformLinks, c.Param("id")); err != nil {
		return h.failRead(c, err)
	}
	return jsonOK(c)
}

// ReorderReleaseLinks handles POST /api/admin/release-platform-links/reorder.
// Callers must pass ids belonging to a single release; ordering is scoped
// per release_id.
func (h *AdminHandler) ReorderReleaseLinks(c echo.Context) error {
	return h.reorder(c, model.TableReleasePlatformLinks)
}
