// Package slog provides logging decorators for the docload ports.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docload"
)

// Ensure LoggingDownloader implements docload.Downloader.
var _ docload.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   docload.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next docload.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, url, destination string) (err error) {
	defer func(begin time.Time) {
		d.logger.Info("download",
			"url", url,
			"destination", destination,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url, destination)
}
