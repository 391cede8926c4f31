package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/supabase"
)

func orderedQuery() supabase.Query {
	return supabase.Query{OrderBy: "order_index"}
}

// reorder handles the shared POST /reorder contract: the body carries the
// full id list in the desired display order and every row's order_index is
// rewritten to its array position.
func (h *AdminHandler) reorder(c echo.Context, table string) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "ids must be an array")
	}
	if body.IDs == nil {
		return jsonError(c, http.StatusBadRequest, "ids must be an array")
	}
	if err := h.DB.Reorder(c.Request().Context(), table, body.IDs); err != nil {
		return h.failRead(c, err)
	}
	return jsonOK(c)
}
