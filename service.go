package newgrounds

import "context"

// Service fetches pages and returns fully assembled records.
type Service interface {
	// SearchAudio returns the results of a single search page.
	SearchAudio(ctx context.Context, terms string, opts SearchOptions) ([]*SearchResult, error)

	// GetAudio returns the detail record of the audio with the given id.
	GetAudio(ctx context.Context, id string) (*Audio, error)

	// GetPlaylist returns the playlist with the given id, e.g. "user/name".
	GetPlaylist(ctx context.Context, id string) (*Playlist, error)
}
