package mock

import (
	"context"

	"github.com/fwojciec/newgrounds"
)

var (
	_ newgrounds.SessionOpener = (*SessionOpener)(nil)
	_ newgrounds.Session       = (*Session)(nil)
)

// SessionOpener is a mock implementation of newgrounds.SessionOpener.
type SessionOpener struct {
	OpenFn func(ctx context.Context) (newgrounds.Session, error)
}

func (o *SessionOpener) Open(ctx context.Context) (newgrounds.Session, error) {
	return o.OpenFn(ctx)
}

// Session is a mock implementation of newgrounds.Session.
type Session struct {
	NavigateFn func(ctx context.Context, url string) error
	EvaluateFn func(ctx context.Context, script string, v any) error
	CloseFn    func() error
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *Session) Evaluate(ctx context.Context, script string, v any) error {
	return s.EvaluateFn(ctx, script, v)
}

func (s *Session) Close() error {
	return s.CloseFn()
}
