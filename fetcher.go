package progadvisor

import "context"

// Fetcher retrieves raw response bodies from URLs.
// Implementations may use plain HTTP or browser automation for pages that
// require JavaScript rendering.
type Fetcher interface {
	// Fetch downloads the resource at url and returns its body.
	// A non-success response status is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
