package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/validate"
)

func parseChartItem(body map[string]any) (model.ChartItem, error) {
	var v validate.Collector
	row := model.ChartItem{
		Title:         v.String(body["title"], "title", 0, 180),
		ImagePath:     v.String(body["image_path"], "image_path", 0, 500),
		ThumbnailPath: v.OptionalString(body["thumbnail_path"], "thumbnail_path", 500),
		URL:           v.URL(body["url"], "url"),
		OrderIndex:    orderIndexOf(body["order_index"]),
	}
	return row, v.Err()
}

// ListCharts handles GET /api/admin/charts.
func (h *AdminHandler) ListCharts(c echo.Context) error {
	rows, err := supabase.FetchRows[model.ChartItem](c.Request().Context(), h.DB, model.TableCharts, orderedQuery())
	if err != nil {
		return h.failRead(c, err)
	}
	return jsonData(c, rows)
}

// CreateChart handles POST /api/admin/charts.
func (h *AdminHandler) CreateChart(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseChartItem(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.InsertRow[model.ChartItem](c.Request().Context(), h.DB, model.TableCharts, payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// UpdateChart handles PATCH /api/admin/charts/:id.
func (h *AdminHandler) UpdateChart(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseChartItem(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.UpdateRow[model.ChartItem](c.Request().Context(), h.DB, model.TableCharts, c.Param("id"), payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// DeleteChart handles DELETE /api/admin/charts/:id.
func (h *AdminHandler) DeleteChart(c echo.Context) error {
	if err := h.DB.DeleteRow(c.Request().Context(), model.TableCharts, c.Param("id")); err != nil {
		return h.failRead(c, err)
	}
	return jsonOK(c)
}

// ReorderCharts handles POST /api/admin/charts/reorder.
func (h *AdminHandler) ReorderCharts(c echo.Context) error {
	return h.reorder(c, model.TableCharts)
}
