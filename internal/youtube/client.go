// Package youtube lists a channel's public videos through the YouTube Data
// API v3 search endpoint, newest first, paginated by opaque page tokens.
package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// MaxResults bounds for one page; requests outside the range are clamped.
const (
	MinPageSize     = 1
	MaxPageSize     = 24
	DefaultPageSize = 12
)

// Video is one normalized listing entry.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PublishedAt  string `json:"publishedAt"`
	VideoURL     string `json:"videoUrl"`
	EmbedURL     string `json:"embedUrl"`
}

// Page is one page of results. NextPageToken is empty on the last page.
type Page struct {
	Videos        []Video `json:"videos"`
	NextPageToken string  `json:"nextPageToken"`
}

// WatchURL is the canonical watch page for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// EmbedURL is the player iframe URL for a video id, with related-video
// suggestions and heavy branding turned off.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id + "?rel=0&modestbranding=1"
}

// Client fetches video listings for one channel.
type Client struct {
	svc       *ytapi.Service
	channelID string
}

// NewClient builds a Client for the given credentials. Missing apiKey or
// channelID is a typed configuration Error; extra options are accepted so
// tests can point the client at a fake endpoint.
func NewClient(ctx context.Context, apiKey, channelID string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" || channelID == "" {
		return nil, newError(CodeMissingConfig, "missing YOUTUBE_API_KEY or YOUTUBE_CHANNEL_ID")
	}
	svc, err := ytapi.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, newError(CodeRequestFailed, fmt.Sprintf("youtube service init: %v", err))
	}
	return &Client{svc: svc, channelID: channelID}, nil
}

// pickThumbnail returns the best available thumbnail URL, preferring the
// largest rendition.
func pickThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*ytapi.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}

// ChannelVideos fetches one page of the channel's videos ordered by publish
// date descending. maxResults is clamped to [MinPageSize, MaxPageSize] and
// defaults to DefaultPageSize when <= 0; pageToken may be empty for the
// first page.
func (c *Client) ChannelVideos(ctx context.Context, pageToken string, maxResults int64) (*Page, error) {
	if maxResults <= 0 {
		maxResults = DefaultPageSize
	}
	if maxResults < MinPageSize {
		maxResults = MinPageSize
	}
	if maxResults > MaxPageSize {
		maxResults = MaxPageSize
	}

	call := c.svc.Search.List([]string{"snippet"}).
		ChannelId(c.channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	res, err := call.Do()
	if err != nil {
		return nil, newError(CodeRequestFailed, fmt.Sprintf("youtube search failed: %v", err))
	}
	if res == nil || res.Items == nil {
		return nil, newError(CodeInvalidResponse, "youtube response did not include an items array")
	}

	videos := make([]Video, 0, len(res.Items))
	for _, item := range res.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		id := item.Id.VideoId
		v := Video{
			ID:       id,
			Title:    "Untitled",
			VideoURL: WatchURL(id),
			EmbedURL: EmbedURL(id),
		}
		if item.Snippet != nil {
			if item.Snippet.Title != "" {
				v.Title = item.Snippet.Title
			}
			v.Description = item.Snippet.Description
			v.PublishedAt = item.Snippet.PublishedAt
			v.ThumbnailURL = pickThumbnail(item.Snippet.Thumbnails)
		}
		videos = append(videos, v)
	}

	return &Page{Videos: videos, NextPageToken: res.NextPageToken}, nil
}
