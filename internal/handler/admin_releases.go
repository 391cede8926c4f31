package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/validate"
)

// parseRelease narrows an untyped body into the editable release fields.
// An empty or absent release_date stays null (unscheduled); is_featured is
// coerced, not validated.
func parseRelease(body map[string]any) (model.Release, error) {
	var v validate.Collector
	row := model.Release{
		Title:          v.String(body["title"], "title", 0, 180),
		Subtitle:       v.OptionalString(body["subtitle"], "subtitle", 240),
		CoverImagePath: v.String(body["cover_image_path"], "cover_image_path", 0, 500),
		IsFeatured:     coerceBool(body["is_featured"]),
		OrderIndex:     orderIndexOf(body["order_index"]),
	}
	if raw := body["release_date"]; raw != nil && raw != "" {
		date := v.DateISO(raw, "release_date")
		row.ReleaseDate = &date
	}
	return row, v.Err()
}

// ListReleases handles GET /api/admin/releases.
func (h *AdminHandler) ListReleases(c echo.Context) error {
	rows, err := supabase.FetchRows[model.Release](c.Request().Context(), h.DB, model.TableReleases, orderedQuery())
	if err != nil {
		return h.failRead(c, err)
	}
	return jsonData(c, rows)
}

// CreateRelease handles POST /api/admin/releases.
func (h *AdminHandler) CreateRelease(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseRelease(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.InsertRow[model.Release](c.Request().Context(), h.DB, model.TableReleases, payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// UpdateRelease handles PATCH /api/admin/releases/:id.
func (h *AdminHandler) UpdateRelease(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseRelease(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.UpdateRow[model.Release](c.Request().Context(), h.DB, model.TableReleases, c.Param("id"), payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// DeleteRelease handles DELETE /api/admin/releases/:id. The release's
// platform links go first so a mid-flight failure leaves the release
// intact instead of orphaning links.
func (h *AdminHandler) DeleteRelease(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")
	if err := h.DB.DeleteRows(ctx, model.TableReleasePlatformLinks, map[string]string{"release_id": id}); err != nil {
		return h.failRead(c, err)
	}
	if err := h.DB.DeleteRow(ctx, model.TableReleases, id); err != nil {
		return h.failRead(c, err)
	}
	return jsonOK(c)
}

// ReorderReleases handles POST /api/admin/releases/reorder.
func (h *AdminHandler) ReorderReleases(c echo.Context) error {
	return h.reorder(c, model.TableReleases)
}
