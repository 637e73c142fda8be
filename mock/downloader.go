package mock

import (
	"context"

	"github.com/fwojciec/docload"
)

var _ docload.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of docload.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, destination string) error
}

func (d *Downloader) Download(ctx context.Context, url, destination string) error {
	return d.DownloadFn(ctx, url, destination)
}
