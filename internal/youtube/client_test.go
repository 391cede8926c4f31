package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *[]url.Values) {
	t.Helper()
	var queries []url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(context.Background(), "test-key", "chan-1", option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	return c, &queries
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClientRequiresConfig(t *testing.T) {
	_, err := NewClient(context.Background(), "", "chan-1")
	var ytErr *Error
	require.ErrorAs(t, err, &ytErr)
	assert.Equal(t, CodeMissingConfig, ytErr.Code)
	assert.Equal(t, http.StatusInternalServerError, ytErr.Status)
	assert.False(t, ytErr.Retriable())

	_, err = NewClient(context.Background(), "key", "")
	require.ErrorAs(t, err, &ytErr)
	assert.Equal(t, CodeMissingConfig, ytErr.Code)
}

func TestChannelVideosMapsResults(t *testing.T) {
	c, queries := newTestClient(t, serveJSON(`{
		"nextPageToken": "tok-2",
		"items": [
			{
				"id": {"videoId": "ABCDEFGHIJK"},
				"snippet": {
					"title": "Live at the Barrowlands",
					"description": "Full set",
					"publishedAt": "2025-06-01T20:00:00Z",
					"thumbnails": {
						"default": {"url": "https://i.ytimg.com/d.jpg"},
						"high": {"url": "https://i.ytimg.com/h.jpg"},
						"maxres": {"url": "https://i.ytimg.com/m.jpg"}
					}
				}
			},
			{"id": {"kind": "youtube#channel"}},
			{
				"id": {"videoId": "LMNOPQRSTUV"},
				"snippet": {"title": "", "thumbnails": {"medium": {"url": "https://i.ytimg.com/med.jpg"}}}
			}
		]
	}`))

	page, err := c.ChannelVideos(context.Background(), "tok-1", 10)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", page.NextPageToken)
	require.Len(t, page.Videos, 2) // the id-less item is skipped

	first := page.Videos[0]
	assert.Equal(t, "ABCDEFGHIJK", first.ID)
	assert.Equal(t, "Live at the Barrowlands", first.Title)
	assert.Equal(t, "https://i.ytimg.com/m.jpg", first.ThumbnailURL, "maxres wins")
	assert.Equal(t, "https://www.youtube.com/watch?v=ABCDEFGHIJK", first.VideoURL)
	assert.Equal(t, "https://www.youtube.com/embed/ABCDEFGHIJK?rel=0&modestbranding=1", first.EmbedURL)
	assert.Equal(t, "2025-06-01T20:00:00Z", first.PublishedAt)

	second := page.Videos[1]
	assert.Equal(t, "Untitled", second.Title)
	assert.Equal(t, "https://i.ytimg.com/med.jpg", second.ThumbnailURL)

	q := (*queries)[0]
	assert.Equal(t, "chan-1", q.Get("channelId"))
	assert.Equal(t, "video", q.Get("type"))
	assert.Equal(t, "date", q.Get("order"))
	assert.Equal(t, "10", q.Get("maxResults"))
	assert.Equal(t, "tok-1", q.Get("pageToken"))
}

func TestChannelVideosClampsPageSize(t *testing.T) {
	c, queries := newTestClient(t, serveJSON(`{"items": []}`))

	_, err := c.ChannelVideos(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, "12", (*queries)[0].Get("maxResults"), "default page size")

	_, err = c.ChannelVideos(context.Background(), "", 100)
	require.NoError(t, err)
	assert.Equal(t, "24", (*queries)[1].Get("maxResults"), "clamped to max")
}

func TestChannelVideosRequestFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"code": 403, "message": "quota exceeded"}}`))
	})

	_, err := c.ChannelVideos(context.Background(), "", 12)
	var ytErr *Error
	require.ErrorAs(t, err, &ytErr)
	assert.Equal(t, CodeRequestFailed, ytErr.Code)
	assert.Equal(t, http.StatusBadGateway, ytErr.Status)
	assert.True(t, ytErr.Retriable())
}

func TestChannelVideosInvalidResponse(t *testing.T) {
	c, _ := newTestClient(t, serveJSON(`{"kind": "youtube#searchListResponse"}`))

	_, err := c.ChannelVideos(context.Background(), "", 12)
	var ytErr *Error
	require.ErrorAs(t, err, &ytErr)
	assert.Equal(t, CodeInvalidResponse, ytErr.Code)
	assert.False(t, ytErr.Retriable())
}
