package model

// TableCharts is the backend table holding chart entries.
const TableCharts = "charts"

// ChartItem is one chart placement. ThumbnailPath is optional; image paths
// may be storage-relative and are resolved to public URLs by the content
// readers.
type ChartItem struct {
	ID            string  `json:"id,omitempty"`
	Title         string  `json:"title"`
	ImagePath     string  `json:"image_path"`
	ThumbnailPath *string `json:"thumbnail_path,omitempty"`
	URL           string  `json:"url"`
	OrderIndex    int     `json:"order_index"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}
