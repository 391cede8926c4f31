package model

// TableMerchItems is the backend table holding merch rows.
const TableMerchItems = "merch_items"

// MerchItem is one merchandise product linking out to an external shop.
type MerchItem struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	ImagePath  string `json:"image_path"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}
