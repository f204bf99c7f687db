package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newgrounds"
)

// Ensure LoggingService implements newgrounds.Service.
var _ newgrounds.Service = (*LoggingService)(nil)

// LoggingService wraps a Service with one log line per call.
type LoggingService struct {
	next   newgrounds.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next newgrounds.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// SearchAudio logs the terms, page and result count.
func (s *LoggingService) SearchAudio(ctx context.Context, terms string, opts newgrounds.SearchOptions) (results []*newgrounds.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search audio",
			"terms", terms,
			"page", opts.Page,
			"sort", string(opts.Sort),
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchAudio(ctx, terms, opts)
}

// GetAudio logs the requested id.
func (s *LoggingService) GetAudio(ctx context.Context, id string) (audio *newgrounds.Audio, err error) {
	defer func(begin time.Time) {
		s.logger.Info("get audio",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetAudio(ctx, id)
}

// GetPlaylist logs the requested id and item count.
func (s *LoggingService) GetPlaylist(ctx context.Context, id string) (playlist *newgrounds.Playlist, err error) {
	defer func(begin time.Time) {
		items := 0
		if playlist != nil {
			items = len(playlist.Items)
		}
		s.logger.Info("get playlist",
			"id", id,
			"items", items,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetPlaylist(ctx, id)
}
