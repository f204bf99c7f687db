package rod

import (
	"context"

	"github.com/fwojciec/newgrounds"
)

// Ensure Fetcher implements newgrounds.Fetcher at compile time.
var _ newgrounds.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Every Fetch runs in its own session, so Fetcher is safe for concurrent use.
type Fetcher struct {
	opener newgrounds.SessionOpener
}

// NewFetcher creates a new Fetcher that renders pages in sessions from opener.
func NewFetcher(opener newgrounds.SessionOpener) *Fetcher {
	return &Fetcher{opener: opener}
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	session, err := f.opener.Open(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := session.Close(); err == nil {
			err = cerr
		}
	}()

	if err := session.Navigate(ctx, url); err != nil {
		return "", err
	}
	if err := session.Evaluate(ctx, `() => document.documentElement.outerHTML`, &html); err != nil {
		return "", err
	}
	return html, nil
}

// Close implements newgrounds.Fetcher. Sessions are released per fetch, so
// there is nothing left to close.
func (f *Fetcher) Close() error {
	return nil
}
