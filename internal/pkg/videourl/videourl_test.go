//go:build unit

package videourl_test

import (
	"testing"

	"sdi-showcase/internal/pkg/videourl"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "youtube watch link", raw: "https://www.youtube.com/watch?v=abc123", want: "https://www.youtube.com/embed/abc123"},
		{name: "youtube watch link with extra params", raw: "https://youtube.com/watch?v=abc123&t=42s", want: "https://www.youtube.com/embed/abc123"},
		{name: "mobile youtube host", raw: "https://m.youtube.com/watch?v=xyz", want: "https://www.youtube.com/embed/xyz"},
		{name: "youtu.be short link", raw: "https://youtu.be/abc123", want: "https://www.youtube.com/embed/abc123"},
		{name: "vimeo link", raw: "https://vimeo.com/76979871", want: "https://player.vimeo.com/video/76979871"},
		{name: "vimeo channel link uses last segment", raw: "https://vimeo.com/channels/staffpicks/76979871/", want: "https://player.vimeo.com/video/76979871"},
		{name: "already embedded youtube link is kept", raw: "https://www.youtube.com/embed/abc123", want: "https://www.youtube.com/embed/abc123"},
		{name: "youtube without v is kept", raw: "https://www.youtube.com/channel/UC123", want: "https://www.youtube.com/channel/UC123"},
		{name: "bare youtu.be is kept", raw: "https://youtu.be/", want: "https://youtu.be/"},
		{name: "vimeo without id is kept", raw: "https://vimeo.com/", want: "https://vimeo.com/"},
		{name: "other provider is kept", raw: "https://example.com/video.mp4", want: "https://example.com/video.mp4"},
		{name: "not a url", raw: "not a url", want: "not a url"},
		{name: "unparsable url", raw: "http://[::1", want: "http://[::1"},
		{name: "empty input", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, videourl.Normalize(tt.raw))
		})
	}
}

func TestIsEmbeddable(t *testing.T) {
	assert.True(t, videourl.IsEmbeddable("https://youtu.be/abc123"))
	assert.False(t, videourl.IsEmbeddable("not a url"))
}
