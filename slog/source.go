package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docload"
)

// Ensure LoggingURLSource implements docload.URLSource.
var _ docload.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with logging.
type LoggingURLSource struct {
	next   docload.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next docload.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) Discover(ctx context.Context, sourceURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url discovery",
			"url", sourceURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, sourceURL)
}
