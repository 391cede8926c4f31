package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/validate"
	"github.com/zeruamusic/site-api/internal/youtube"
)

// videoListCacheControl keeps the gallery cheap to serve while letting new
// uploads show up within minutes.
const videoListCacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// featuredVideoPayload resolves the stored URL into what the player needs.
// Non-YouTube URLs pass through with empty id and embed fields.
func featuredVideoPayload(url string) map[string]string {
	payload := map[string]string{"url": url, "videoId": "", "embedUrl": ""}
	if id := validate.ExtractYouTubeID(url); id != "" {
		payload["videoId"] = id
		payload["embedUrl"] = youtube.EmbedURL(id)
	}
	return payload
}

// FeaturedVideo handles GET /api/featured-video for the public player.
func (p *PublicHandler) FeaturedVideo(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	return jsonData(c, featuredVideoPayload(p.Reader.FeaturedVideoURL(c.Request().Context())))
}

// parseMaxResults validates the optional maxResults query parameter:
// an integer in [1, 24], defaulting to 12.
func parseMaxResults(raw string) (int64, error) {
	if raw == "" {
		return youtube.DefaultPageSize, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("maxResults must be an integer")
	}
	if n < youtube.MinPageSize || n > youtube.MaxPageSize {
		return 0, errors.New("maxResults must be between 1 and 24")
	}
	return n, nil
}

// Videos handles GET /api/youtube/videos, the paginated channel listing.
func (p *PublicHandler) Videos(c echo.Context) error {
	maxResults, err := parseMaxResults(c.QueryParam("maxResults"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error(), "code": "BAD_REQUEST"})
	}

	if p.YouTube == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "missing YOUTUBE_API_KEY or YOUTUBE_CHANNEL_ID",
			"code":  string(youtube.CodeMissingConfig),
		})
	}

	page, err := p.YouTube.ChannelVideos(c.Request().Context(), c.QueryParam("pageToken"), maxResults)
	if err != nil {
		var ytErr *youtube.Error
		if errors.As(err, &ytErr) {
			p.Log.Error().Err(err).Str("code", string(ytErr.Code)).Msg("video listing failed")
			return c.JSON(ytErr.Status, map[string]string{"error": ytErr.Message, "code": string(ytErr.Code)})
		}
		p.Log.Error().Err(err).Msg("video listing failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Unexpected server error", "code": "INTERNAL_SERVER_ERROR",
		})
	}

	c.Response().Header().Set("Cache-Control", videoListCacheControl)
	return jsonData(c, page)
}
