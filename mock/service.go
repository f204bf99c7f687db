package mock

import (
	"context"

	"github.com/fwojciec/newgrounds"
)

var _ newgrounds.Service = (*Service)(nil)

// Service is a mock implementation of newgrounds.Service.
type Service struct {
	SearchAudioFn func(ctx context.Context, terms string, opts newgrounds.SearchOptions) ([]*newgrounds.SearchResult, error)
	GetAudioFn    func(ctx context.Context, id string) (*newgrounds.Audio, error)
	GetPlaylistFn func(ctx context.Context, id string) (*newgrounds.Playlist, error)
}

func (s *Service) SearchAudio(ctx context.Context, terms string, opts newgrounds.SearchOptions) ([]*newgrounds.SearchResult, error) {
	return s.SearchAudioFn(ctx, terms, opts)
}

func (s *Service) GetAudio(ctx context.Context, id string) (*newgrounds.Audio, error) {
	return s.GetAudioFn(ctx, id)
}

func (s *Service) GetPlaylist(ctx context.Context, id string) (*newgrounds.Playlist, error) {
	return s.GetPlaylistFn(ctx, id)
}
