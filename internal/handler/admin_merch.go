package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/validate"
)

func parseMerchItem(body map[string]any) (model.MerchItem, error) {
	var v validate.Collector
	row := model.MerchItem{
		Title:      v.String(body["title"], "title", 0, 180),
		ImagePath:  v.String(body["image_path"], "image_path", 0, 500),
		URL:        v.URL(body["url"], "url"),
		OrderIndex: orderIndexOf(body["order_index"]),
	}
	return row, v.Err()
}

// ListMerchItems handles GET /api/admin/merch-items.
func (h *AdminHandler) ListMerchItems(c echo.Context) error {
	rows, err := supabase.FetchRows[model.MerchItem](c.Request().Context(), h.DB, model.TableMerchItems, orderedQuery())
	if err != nil {
		return h.failRead(c, err)
	}
	return jsonData(c, rows)
}

// CreateMerchItem handles POST /api/admin/merch-items.
func (h *AdminHandler) CreateMerchItem(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseMerchItem(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.InsertRow[model.MerchItem](c.Request().Context(), h.DB, model.TableMerchItems, payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// UpdateMerchItem handles PATCH /api/admin/merch-items/:id.
func (h *AdminHandler) UpdateMerchItem(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseMerchItem(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.UpdateRow[model.MerchItem](c.Request().Context(), h.DB, model.TableMerchItems, c.Param("id"), payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// DeleteMerchItem handles DELETE /api/admin/merch-items/:id.
func (h *AdminHandler) DeleteMerchItem(c echo.Context) error {
	if err := h.DB.DeleteRow(c.Request().Context(), model.TableMerchItems, c.Param("id")); err != nil {
		return h.failRead(c, err)
	}
	return jsonOK(c)
}

// ReorderMerchItems handles POST /api/admin/merch-items/reorder.
func (h *AdminHandler) ReorderMerchItems(c echo.Context) error {
	return h.reorder(c, model.TableMerchItems)
}
