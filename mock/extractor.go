package mock

import (
	"context"

	"github.com/fwojciec/newgrounds"
)

var (
	_ newgrounds.StaticExtractor   = (*StaticExtractor)(nil)
	_ newgrounds.RenderedExtractor = (*RenderedExtractor)(nil)
)

// StaticExtractor is a mock implementation of newgrounds.StaticExtractor.
type StaticExtractor struct {
	ExtractSearchResultsFn func(html string) ([]*newgrounds.RawSearchResult, error)
	ExtractAudioFn         func(html string) (*newgrounds.RawAudio, error)
}

func (e *StaticExtractor) ExtractSearchResults(html string) ([]*newgrounds.RawSearchResult, error) {
	return e.ExtractSearchResultsFn(html)
}

func (e *StaticExtractor) ExtractAudio(html string) (*newgrounds.RawAudio, error) {
	return e.ExtractAudioFn(html)
}

// RenderedExtractor is a mock implementation of newgrounds.RenderedExtractor.
type RenderedExtractor struct {
	ExtractPlaylistFn func(ctx context.Context, url string) (*newgrounds.RawPlaylist, error)
}

func (e *RenderedExtractor) ExtractPlaylist(ctx context.Context, url string) (*newgrounds.RawPlaylist, error) {
	return e.ExtractPlaylistFn(ctx, url)
}
