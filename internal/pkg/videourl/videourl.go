// Package videourl rewrites share links of known video providers into the
// URL form their players accept inside an iframe.
package videourl

import (
	"net/url"
	"strings"
)

const (
	youTubeEmbedBase = "https://www.youtube.com/embed"
	vimeoPlayerBase  = "https://player.vimeo.com/video/"
)

// Normalize maps raw to an embeddable URL for YouTube and Vimeo links.
// Anything it does not recognise, including input that fails to parse,
// is returned unchanged.
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, "youtube"):
		// embed links and watch pages without v= are left alone
		if v := u.Query().Get("v"); v != "" {
			return youTubeEmbedBase + "/" + v
		}
	case host == "youtu.be":
		if path := u.EscapedPath(); path != "" && path != "/" {
			return youTubeEmbedBase + path
		}
	case strings.Contains(host, "vimeo"):
		if id := lastSegment(u.Path); id != "" {
			return vimeoPlayerBase + id
		}
	}
	return raw
}

// IsEmbeddable reports whether Normalize rewrites raw.
func IsEmbeddable(raw string) bool {
	return Normalize(raw) != raw
}

func lastSegment(path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
