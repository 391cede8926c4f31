package content

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
)

// readVideoURL extracts a URL from a stored site-content value. The slot
// historically held either a plain string or an object with a youtube_url
// (or url) field; both shapes are still read.
func readVideoURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var shaped struct {
		YouTubeURL string `json:"youtube_url"`
		URL        string `json:"url"`
	}
	if err := json.Unmarshal(raw, &shaped); err == nil {
		if shaped.YouTubeURL != "" {
			return strings.TrimSpace(shaped.YouTubeURL)
		}
		if shaped.URL != "" {
			return strings.TrimSpace(shaped.URL)
		}
	}
	return ""
}

func fetchVideoURLKey(ctx context.Context, db *supabase.Client, key string) (string, error) {
	rows, err := supabase.FetchRows[model.SiteContentRow](ctx, db, model.TableSiteContent, supabase.Query{
		Filters: map[string]string{"key": key},
		Limit:   1,
	})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return readVideoURL(rows[0].Value), nil
}

// GetFeaturedVideoURL reads the featured video setting: the current key
// first, then the legacy showcase key left over from a historical rename,
// else "".
func GetFeaturedVideoURL(ctx context.Context, db *supabase.Client) (string, error) {
	url, err := fetchVideoURLKey(ctx, db, model.SiteContentKeyFeaturedVideo)
	if err != nil {
		return "", err
	}
	if url != "" {
		return url, nil
	}
	return fetchVideoURLKey(ctx, db, model.SiteContentKeyLegacyVideo)
}

// SetFeaturedVideoURL stores the trimmed URL under the current key and
// mirrors it into the legacy key so older readers keep working.
func SetFeaturedVideoURL(ctx context.Context, db *supabase.Client, url string) (string, error) {
	normalized := strings.TrimSpace(url)
	if _, err := supabase.UpsertSiteContent[model.SiteContentRow](ctx, db, model.SiteContentKeyFeaturedVideo, normalized); err != nil {
		return "", err
	}
	legacy := map[string]any{"youtube_url": normalized, "title": "Featured video"}
	if _, err := supabase.UpsertSiteContent[model.SiteContentRow](ctx, db, model.SiteContentKeyLegacyVideo, legacy); err != nil {
		return "", err
	}
	return normalized, nil
}
