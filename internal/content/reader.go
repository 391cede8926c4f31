// Package content aggregates backend rows into what the public pages show.
// Every reader swallows backend failures and substitutes a default (empty
// list or built-in copy) so the marketing site keeps rendering even when
// the store is unreachable; failures are logged, never propagated.
package content

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/zeruamusic/site-api/internal/model"
	"github.com/zeruamusic/site-api/internal/supabase"
)

// Reader exposes the read-only content views used by the public surface.
type Reader struct {
	db  *supabase.Client
	log zerolog.Logger
}

// NewReader wires a Reader over the backend gateway.
func NewReader(db *supabase.Client, log zerolog.Logger) *Reader {
	return &Reader{db: db, log: log}
}

func orderedQuery() supabase.Query {
	return supabase.Query{OrderBy: "order_index"}
}

// resolvePath turns a storage-relative image path into a public URL.
// Absolute URLs and empty paths pass through.
func (r *Reader) resolvePath(path, bucket string) string {
	if path == "" {
		return ""
	}
	return r.db.PublicURL(bucket, path)
}

func (r *Reader) swallow(err error, what string) {
	if err != nil {
		r.log.Warn().Err(err).Str("resource", what).Msg("content read failed, serving fallback")
	}
}

// TourDates returns all tour dates in display order, or an empty list.
func (r *Reader) TourDates(ctx context.Context) []model.TourDate {
	rows, err := supabase.FetchRows[model.TourDate](ctx, r.db, model.TableTourDates, orderedQuery())
	if err != nil {
		r.swallow(err, model.TableTourDates)
		return []model.TourDate{}
	}
	return rows
}

// Releases returns all releases in display order, or an empty list.
func (r *Reader) Releases(ctx context.Context) []model.Release {
	rows, err := supabase.FetchRows[model.Release](ctx, r.db, model.TableReleases, orderedQuery())
	if err != nil {
		r.swallow(err, model.TableReleases)
		return []model.Release{}
	}
	return rows
}

// ReleaseLinks returns platform links in display order, filtered to one
// release when releaseID is non-empty.
func (r *Reader) ReleaseLinks(ctx context.Context, releaseID string) []model.ReleasePlatformLink {
	q := orderedQuery()
	if releaseID != "" {
		q.Filters = map[string]string{"release_id": releaseID}
	}
	rows, err := supabase.FetchRows[model.ReleasePlatformLink](ctx, r.db, model.TableReleasePlatformLinks, q)
	if err != nil {
		r.swallow(err, model.TableReleasePlatformLinks)
		return []model.ReleasePlatformLink{}
	}
	return rows
}

// Charts returns chart items in display order with image paths resolved to
// public URLs.
func (r *Reader) Charts(ctx context.Context) []model.ChartItem {
	rows, err := supabase.FetchRows[model.ChartItem](ctx, r.db, model.TableCharts, orderedQuery())
	if err != nil {
		r.swallow(err, model.TableCharts)
		return []model.ChartItem{}
	}
	for i := range rows {
		rows[i].ImagePath = r.resolvePath(rows[i].ImagePath, model.BucketCharts)
		if rows[i].ThumbnailPath != nil {
			resolved := r.resolvePath(*rows[i].ThumbnailPath, model.BucketCharts)
			rows[i].ThumbnailPath = &resolved
		}
	}
	return rows
}

// MerchItems returns merch in display order with image paths resolved.
func (r *Reader) MerchItems(ctx context.Context) []model.MerchItem {
	rows, err := supabase.FetchRows[model.MerchItem](ctx, r.db, model.TableMerchItems, orderedQuery())
	if err != nil {
		r.swallow(err, model.TableMerchItems)
		return []model.MerchItem{}
	}
	for i := range rows {
		rows[i].ImagePath = r.resolvePath(rows[i].ImagePath, model.BucketMerch)
	}
	return rows
}

// siteContentValue reads one singleton key into out, reporting whether a
// stored value was decoded. Absent keys and backend failures leave out
// untouched.
func (r *Reader) siteContentValue(ctx context.Context, key string, out any) bool {
	rows, err := supabase.FetchRows[model.SiteContentRow](ctx, r.db, model.TableSiteContent, supabase.Query{
		Filters: map[string]string{"key": key},
		Limit:   1,
	})
	if err != nil {
		r.swallow(err, model.TableSiteContent+"/"+key)
		return false
	}
	if len(rows) == 0 || len(rows[0].Value) == 0 {
		return false
	}
	if err := json.Unmarshal(rows[0].Value, out); err != nil {
		r.swallow(err, model.TableSiteContent+"/"+key)
		return false
	}
	return true
}

// About returns the about-page copy, falling back to DefaultAbout.
func (r *Reader) About(ctx context.Context) model.AboutContent {
	var v model.AboutContent
	if !r.siteContentValue(ctx, model.SiteContentKeyAbout, &v) {
		return DefaultAbout
	}
	return v
}

// HomeHeroCopy returns the homepage hero copy, falling back to
// DefaultHeroCopy.
func (r *Reader) HomeHeroCopy(ctx context.Context) model.HomeHeroCopy {
	var v model.HomeHeroCopy
	if !r.siteContentValue(ctx, model.SiteContentKeyHomeHeroCopy, &v) {
		return DefaultHeroCopy
	}
	return v
}

// FeaturedRelease is the homepage's highlighted release with its platform
// links attached and the cover resolved to a public URL.
type FeaturedRelease struct {
	model.Release
	Links []model.ReleasePlatformLink `json:"links"`
}

// FeaturedRelease picks the release marked featured, else the first in
// display order, else nil.
func (r *Reader) FeaturedRelease(ctx context.Context) *FeaturedRelease {
	releases := r.Releases(ctx)
	if len(releases) == 0 {
		return nil
	}
	featured := releases[0]
	for _, rel := range releases {
		if rel.IsFeatured {
			featured = rel
			break
		}
	}
	featured.CoverImagePath = r.resolvePath(featured.CoverImagePath, model.BucketReleaseCovers)
	return &FeaturedRelease{
		Release: featured,
		Links:   r.ReleaseLinks(ctx, featured.ID),
	}
}

// FeaturedVideoURL returns the configured video URL or the default when the
// setting is unset or the backend is down.
func (r *Reader) FeaturedVideoURL(ctx context.Context) string {
	url, err := GetFeaturedVideoURL(ctx, r.db)
	if err != nil {
		r.swallow(err, "featured-video")
		return DefaultFeaturedVideoURL
	}
	if url == "" {
		return DefaultFeaturedVideoURL
	}
	return url
}
