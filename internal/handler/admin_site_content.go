package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
)

// GetSiteContent handles GET /api/admin/site-content/:key, returning the
// stored row or null when the key has never been written.
func (h *AdminHandler) GetSiteContent(c echo.Context) error {
	rows, err := supabase.FetchRows[model.SiteContentRow](c.Request().Context(), h.DB, model.TableSiteContent, supabase.Query{
		Filters: map[string]string{"key": c.Param("key")},
		Limit:   1,
	})
	if err != nil {
		return h.failRead(c, err)
	}
	if len(rows) == 0 {
		return jsonData(c, nil)
	}
	return jsonData(c, rows[0])
}

// PatchSiteContent handles PATCH /api/admin/site-content/:key with a
// {value} body. The value is an opaque JSON payload whose shape depends on
// the key; upsert semantics replace any previous value.
func (h *AdminHandler) PatchSiteContent(c echo.Context) error {
	var body struct {
		Value json.RawMessage `json:"value"`
	}
	if err := c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid JSON body")
	}
	row, err := supabase.UpsertSiteContent[model.SiteContentRow](c.Request().Context(), h.DB, c.Param("key"), body.Value)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}
