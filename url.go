package newgrounds

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchURL returns the audio search page URL for terms.
func SearchURL(base, terms string, opts SearchOptions) string {
	opts = opts.withDefaults()
	q := url.Values{}
	q.Set("terms", terms)
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("sort", string(opts.Sort))
	return baseURL(base) + "/search/conduct/audio?" + q.Encode()
}

// AudioURL returns the listen page URL of an audio.
func AudioURL(base, id string) string {
	return baseURL(base) + "/audio/listen/" + url.PathEscape(id)
}

// PlaylistURL returns the page URL of a playlist. Playlist ids contain a
// slash ("owner/name") which is kept as a path separator.
func PlaylistURL(base, id string) string {
	parts := strings.Split(strings.Trim(id, "/"), "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return baseURL(base) + "/playlist/" + strings.Join(parts, "/")
}

// IDFromLink returns the final path segment of link.
func IDFromLink(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}

// ResolveURL resolves href against base. It returns href unchanged when
// either cannot be parsed, and "" for an empty href.
func ResolveURL(base, href string) string {
	if href == "" {
		return ""
	}
	b, err := url.Parse(baseURL(base))
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(ref).String()
}

func baseURL(base string) string {
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/")
}
