package strategy

import (
	"context"
	"time"
)

// BrowserProvider opens browser sessions for scraper runs. Each session
// is exclusively owned by one Execute call.
type BrowserProvider interface {
	OpenSession(ctx context.Context) (Session, error)
}

// Session is one live browser tab. Implementations must tolerate Close
// being called after a failed operation; the scraper guarantees Close on
// every exit path.
type Session interface {
	// Navigate loads the URL and waits for the page to settle.
	Navigate(ctx context.Context, url string) error

	// WaitForSelector blocks until at least one element matches selector,
	// or the timeout elapses.
	WaitForSelector(ctx context.Context, selector string, timeout time.Duration) error

	// Extract evaluates script in the page and unmarshals its JSON result
	// into out.
	Extract(ctx context.Context, script string, out any) error

	// Close tears down the session and its browser resources.
	Close(ctx context.Context) error
}
