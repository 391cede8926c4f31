// Package model holds the flat row types stored in the hosted tabular
// backend. Field tags match the backend column names exactly; identifiers
// are server-assigned and returned as strings.
package model

// TableTourDates is the backend table holding live event rows.
const TableTourDates = "tour_dates"

// TourDate is one live event. TicketURL may be empty for free events; the
// admin boundary clears it whenever IsFree is set.
type TourDate struct {
	ID         string `json:"id,omitempty"`
	EventDate  string `json:"event_date"`
	City       string `json:"city"`
	Venue      string `json:"venue"`
	TicketURL  string `json:"ticket_url"`
	IsFree     bool   `json:"is_free"`
	IsSoldOut  bool   `json:"is_sold_out"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}
