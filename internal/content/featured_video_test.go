package content

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeruamusic/site-api/internal/supabase"
)

func TestGetFeaturedVideoURLPrimaryKey(t *testing.T) {
	db := newFakeBackend(t, map[string]string{
		"site_content?key=eq.featuredVideoUrl&limit=1": `[{"key":"featuredVideoUrl","value":"https://youtu.be/ABCDEFGHIJK"}]`,
	})
	url, err := GetFeaturedVideoURL(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/ABCDEFGHIJK", url)
}

func TestGetFeaturedVideoURLLegacyFallback(t *testing.T) {
	// primary key unset, legacy key holds the object shape
	db := newFakeBackend(t, map[string]string{
		"site_content?key=eq.showcase_video&limit=1": `[{"key":"showcase_video","value":{"youtube_url":"https://x"}}]`,
	})
	url, err := GetFeaturedVideoURL(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "https://x", url)
}

func TestGetFeaturedVideoURLObjectURLField(t *testing.T) {
	db := newFakeBackend(t, map[string]string{
		"site_content?key=eq.featuredVideoUrl&limit=1": `[{"key":"featuredVideoUrl","value":{"url":"https://y"}}]`,
	})
	url, err := GetFeaturedVideoURL(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "https://y", url)
}

func TestGetFeaturedVideoURLEmptyWhenUnset(t *testing.T) {
	url, err := GetFeaturedVideoURL(context.Background(), newFakeBackend(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "", url)
}

func TestFeaturedVideoURLReaderSwallowsFailure(t *testing.T) {
	assert.Equal(t, DefaultFeaturedVideoURL,
		newReader(newBrokenBackend(t)).FeaturedVideoURL(context.Background()))
}

func TestSetFeaturedVideoURLWritesBothKeys(t *testing.T) {
	var upserts []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(body, &payload))
			upserts = append(upserts, payload)
			_, _ = w.Write([]byte(`[{"key":"x","value":""}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	db, err := supabase.New(srv.URL, "key")
	require.NoError(t, err)

	got, err := SetFeaturedVideoURL(context.Background(), db, "  https://youtu.be/ABCDEFGHIJK  ")
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/ABCDEFGHIJK", got)

	require.Len(t, upserts, 2)
	assert.Equal(t, "featuredVideoUrl", upserts[0]["key"])
	assert.Equal(t, "https://youtu.be/ABCDEFGHIJK", upserts[0]["value"])
	assert.Equal(t, "showcase_video", upserts[1]["key"])
	legacy, ok := upserts[1]["value"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://youtu.be/ABCDEFGHIJK", legacy["youtube_url"])
	assert.Equal(t, "Featured video", legacy["title"])
}
