package model

// TableReleases is the backend table holding release rows.
const TableReleases = "releases"

// Release is one album or single. ReleaseDate is nil for unscheduled
// releases. At most one release should be featured at a time; that is a
// curatorial convention, not enforced anywhere.
type Release struct {
	ID             string  `json:"id,omitempty"`
	Title          string  `json:"title"`
	Subtitle       *string `json:"subtitle"`
	CoverImagePath string  `json:"cover_image_path"`
	ReleaseDate    *string `json:"release_date"`
	IsFeatured     bool    `json:"is_featured"`
	OrderIndex     int     `json:"order_index"`
	CreatedAt      string  `json:"created_at,omitempty"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}
