package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docload"
)

var _ docload.FileSystem = (*LoggingFileSystem)(nil)

// LoggingFileSystem wraps a FileSystem with debug logging.
type LoggingFileSystem struct {
	next   docload.FileSystem
	logger *slog.Logger
}

// NewLoggingFileSystem creates a new LoggingFileSystem.
func NewLoggingFileSystem(next docload.FileSystem, logger *slog.Logger) *LoggingFileSystem {
	return &LoggingFileSystem{next: next, logger: logger}
}

func (f *LoggingFileSystem) Exists(ctx context.Context, path string) (exists bool) {
	defer func(begin time.Time) {
		f.logger.Debug("exists",
			"path", path,
			"exists", exists,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Exists(ctx, path)
}

func (f *LoggingFileSystem) WriteBytes(ctx context.Context, path string, content []byte) (err error) {
	defer func(begin time.Time) {
		f.logger.Debug("write bytes",
			"path", path,
			"size", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.WriteBytes(ctx, path, content)
}

func (f *LoggingFileSystem) CreateDirectory(ctx context.Context, path string) (err error) {
	defer func(begin time.Time) {
		f.logger.Debug("create directory",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.CreateDirectory(ctx, path)
}
