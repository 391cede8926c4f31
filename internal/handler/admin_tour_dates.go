package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
	"github.com/zeruamusic/site-api/internal/validate"
)

// parseTourDate narrows an untyped body into the editable tour date fields.
// A free event never keeps a ticket URL: is_free clears it server-side so a
// stale form value cannot leak through.
func parseTourDate(body map[string]any) (model.TourDate, error) {
	var v validate.Collector
	row := model.TourDate{
		EventDate:  v.DateISO(body["event_date"], "event_date"),
		City:       v.String(body["city"], "city", 0, 120),
		Venue:      v.String(body["venue"], "venue", 0, 160),
		TicketURL:  v.OptionalURL(body["ticket_url"], "ticket_url"),
		IsFree:     v.Bool(body["is_free"], "is_free", false),
		IsSoldOut:  v.Bool(body["is_sold_out"], "is_sold_out", false),
		OrderIndex: orderIndexOf(body["order_index"]),
	}
	if row.IsFree {
		row.TicketURL = ""
	}
	return row, v.Err()
}

// ListTourDates handles GET /api/admin/tour-dates.
func (h *AdminHandler) ListTourDates(c echo.Context) error {
	rows, err := supabase.FetchRows[model.TourDate](c.Request().Context(), h.DB, model.TableTourDates, orderedQuery())
	if err != nil {
		return h.failRead(c, err)
	}
	return jsonData(c, rows)
}

// CreateTourDate handles POST /api/admin/tour-dates.
func (h *AdminHandler) CreateTourDate(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseTourDate(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.InsertRow[model.TourDate](c.Request().Context(), h.DB, model.TableTourDates, payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// UpdateTourDate handles PATCH /api/admin/tour-dates/:id. The editable
// fields are overwritten wholesale with the validated body.
func (h *AdminHandler) UpdateTourDate(c echo.Context) error {
	body, err := parseBody(c)
	if err != nil {
		return h.failWrite(c, err)
	}
	payload, err := parseTourDate(body)
	if err != nil {
		return h.failWrite(c, err)
	}
	row, err := supabase.UpdateRow[model.TourDate](c.Request().Context(), h.DB, model.TableTourDates, c.Param("id"), payload)
	if err != nil {
		return h.failWrite(c, err)
	}
	return jsonData(c, row)
}

// DeleteTourDate handles DELETE /api/admin/tour-dates/:id.
func (h *AdminHandler) DeleteTourDate(c echo.Context) error {
	if err := h.DB.DeleteRow(c.Request().Context(), model.TableTourDates, c.Param("id")); err != nil {
		return h.failRead(c, err)
	}
	return jsonOK(c)
}

// ReorderTourDates handles POST /api/admin/tour-dates/reorder.
func (h *AdminHandler) ReorderTourDates(c echo.Context) error {
	return h.reorder(c, model.TableTourDates)
}
