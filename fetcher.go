package urltext

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations own connection pooling, retry policy, and timeouts.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// Redirects are not followed; a redirect status is an error outcome.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases connection resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
