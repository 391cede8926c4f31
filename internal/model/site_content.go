package model

import "encoding/json"

// TableSiteContent is the backend table holding singleton content slots.
const TableSiteContent = "site_content"

// Site content keys. Each key holds one value with its own shape; the typed
// variants below are the closed set the site understands. FeaturedVideoKey
// holds a plain URL string; LegacyShowcaseKey is the setting's pre-rename
// slot, still written on every update and read as a fallback.
const (
	SiteContentKeyAbout         = "about"
	SiteContentKeyHomeHeroCopy  = "home_hero_copy"
	SiteContentKeyFeaturedVideo = "featuredVideoUrl"
	SiteContentKeyLegacyVideo   = "showcase_video"
)

// SiteContentRow is one singleton slot as stored. Value stays raw JSON at
// the gateway level; readers decode it into the typed variant for the key.
type SiteContentRow struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// AboutContent is the shape stored under SiteContentKeyAbout.
type AboutContent struct {
	Paragraphs []string `json:"paragraphs"`
}

// HomeHeroCopy is the shape stored under SiteContentKeyHomeHeroCopy.
type HomeHeroCopy struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
}
