package newgrounds

import "context"

// StaticExtractor reads raw records out of statically fetched markup.
type StaticExtractor interface {
	// ExtractSearchResults returns one raw result per result block,
	// in document order.
	ExtractSearchResults(html string) ([]*RawSearchResult, error)

	// ExtractAudio returns the raw content of an audio detail page.
	ExtractAudio(html string) (*RawAudio, error)
}

// RenderedExtractor reads raw records out of a script-rendered document.
type RenderedExtractor interface {
	// ExtractPlaylist navigates to url and runs the playlist routine in the
	// rendered page. The browser session is released before returning.
	ExtractPlaylist(ctx context.Context, url string) (*RawPlaylist, error)
}
