package stylesnatcher

import "context"

// Fetcher retrieves content from URLs. It serves two roles: fetching page
// HTML (where implementations may use browser automation to include
// JavaScript-injected styles) and fetching linked stylesheet bodies.
type Fetcher interface {
	// Fetch retrieves the content at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
