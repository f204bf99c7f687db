package scrape

import (
	"context"

	"github.com/fwojciec/newgrounds"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of detail pages GetAudios fetches at once.
const DefaultConcurrency = 3

// GetAudios fetches the given audios through s with at most concurrency
// lookups in flight. Results keep the order of ids. The first failure
// cancels the remaining lookups.
func GetAudios(ctx context.Context, s newgrounds.Service, ids []string, concurrency int) ([]*newgrounds.Audio, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*newgrounds.Audio, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ids {
		g.Go(func() error {
			audio, err := s.GetAudio(gctx, id)
			if err != nil {
				return err
			}
			results[i] = audio
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
