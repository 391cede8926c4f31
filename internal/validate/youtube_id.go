package validate

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var bareVideoIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// youtubeHosts are the canonical hosts carrying a video id in the query or
// path. The leading "www." is stripped before matching.
var youtubeHosts = []string{"youtube.com", "m.youtube.com", "music.youtube.com", "youtube-nocookie.com"}

// pathMarkers are path segments whose following segment is the video id.
var pathMarkers = []string{"shorts", "live", "embed", "v"}

// ExtractYouTubeID pulls an 11-character video id out of a YouTube URL:
// the youtu.be short-link host, the watch "v" query parameter, or a
// /shorts/, /live/, /embed/ or /v/ path segment. Input that does not parse
// as a URL is accepted as-is when it is already a bare 11-character id.
// Returns "" when nothing matches.
func ExtractYouTubeID(input string) string {
	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil || u.Host == "" {
		normalized := strings.TrimSpace(input)
		if bareVideoIDRe.MatchString(normalized) {
			return normalized
		}
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")

	if host == "youtu.be" {
		if parts := splitPath(u.Path); len(parts) > 0 {
			return parts[0]
		}
		return ""
	}

	if !slices.Contains(youtubeHosts, host) {
		return ""
	}
	if v := u.Query().Get("v"); v != "" {
		return v
	}
	parts := splitPath(u.Path)
	for i, part := range parts {
		if slices.Contains(pathMarkers, part) && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func splitPath(p string) []string {
	var out []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
