package newgrounds

import "context"

// SessionOpener acquires rendered-browser sessions.
type SessionOpener interface {
	// Open starts a browser session with a single page ready to navigate.
	// Callers must Close the session on every exit path.
	Open(ctx context.Context) (Session, error)
}

// Session is a live browser page after page scripts have run.
type Session interface {
	// Navigate loads url and waits until the network is idle.
	Navigate(ctx context.Context, url string) error

	// Evaluate runs a JavaScript function in the page and decodes its JSON
	// result into v.
	Evaluate(ctx context.Context, script string, v any) error

	// Close releases the page and the browser process.
	// Close is safe to call multiple times.
	Close() error
}
