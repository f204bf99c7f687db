package newgrounds

import "context"

// Fetcher retrieves the raw markup of a URL without executing scripts.
type Fetcher interface {
	// Fetch returns the response body of url.
	// A non-success status is reported as a *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
