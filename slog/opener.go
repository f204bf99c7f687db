package slog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/newgrounds"
)

// Ensure LoggingOpener implements newgrounds.SessionOpener.
var _ newgrounds.SessionOpener = (*LoggingOpener)(nil)

// LoggingOpener wraps a SessionOpener so that opened sessions log their
// navigation, evaluation and lifetime.
type LoggingOpener struct {
	next   newgrounds.SessionOpener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next newgrounds.SessionOpener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open logs the browser launch and returns a logging session.
func (o *LoggingOpener) Open(ctx context.Context) (newgrounds.Session, error) {
	begin := time.Now()
	s, err := o.next.Open(ctx)
	o.logger.Info("session open",
		"duration", time.Since(begin),
		"err", err,
	)
	if err != nil {
		return nil, err
	}
	return &loggingSession{next: s, logger: o.logger, opened: time.Now()}, nil
}

type loggingSession struct {
	next   newgrounds.Session
	logger *slog.Logger
	opened time.Time
	closed atomic.Bool
}

func (s *loggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

func (s *loggingSession) Evaluate(ctx context.Context, script string, v any) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("evaluate",
			"bytes", len(script),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Evaluate(ctx, script, v)
}

// Close logs only the first call; later calls still reach the wrapped
// session.
func (s *loggingSession) Close() error {
	err := s.next.Close()
	if !s.closed.CompareAndSwap(false, true) {
		return err
	}
	s.logger.Info("session close",
		"lifetime", time.Since(s.opened),
		"err", err,
	)
	return err
}
