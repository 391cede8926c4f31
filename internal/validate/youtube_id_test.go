package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"watch url", "https://www.youtube.com/watch?v=ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"watch url without www", "https://youtube.com/watch?v=ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"short link", "https://youtu.be/ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"short link with query", "https://youtu.be/ABCDEFGHIJK?si=xyz", "ABCDEFGHIJK"},
		{"shorts path", "https://www.youtube.com/shorts/ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"live path", "https://www.youtube.com/live/ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"embed path", "https://www.youtube.com/embed/ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"v path", "https://www.youtube.com/v/ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"mobile host", "https://m.youtube.com/watch?v=ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"music host", "https://music.youtube.com/watch?v=ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"nocookie host", "https://www.youtube-nocookie.com/embed/ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"bare id token", "ABCDEFGHIJK", "ABCDEFGHIJK"},
		{"bare id with underscore and dash", "a_b-c_d-e_f", "a_b-c_d-e_f"},
		{"non-youtube url", "https://vimeo.com/12345", ""},
		{"youtube url without id", "https://www.youtube.com/feed/subscriptions", ""},
		{"garbage", "not a url and not an id", ""},
		{"too-short token", "ABC", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractYouTubeID(tc.input))
		})
	}
}
