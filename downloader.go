package docload

import "context"

// Downloader fetches the resource at a URL and persists it to a destination.
type Downloader interface {
	// Download fetches url and writes the response body to destination.
	// The context controls timeout and cancellation of the transfer.
	Download(ctx context.Context, url, destination string) error
}
