package model

// TableReleasePlatformLinks is the backend table holding streaming links.
const TableReleasePlatformLinks = "release_platform_links"

// ReleasePlatformLink points one release at one streaming platform. Ordering
// is scoped per release.
type ReleasePlatformLink struct {
	ID         string `json:"id,omitempty"`
	ReleaseID  string `json:"release_id"`
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	OrderIndex int    `json:"order_index"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}
