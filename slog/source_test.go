package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docload/mock"
	dlslog "github.com/fwojciec/docload/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingURLSource_Discover(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.URLSource{
			DiscoverFn: func(ctx context.Context, sourceURL string) ([]string, error) {
				return []string{"https://example.com/a", "https://example.com/b"}, nil
			},
		}

		src := dlslog.NewLoggingURLSource(inner, logger)
		urls, err := src.Discover(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "url discovery")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.URLSource{
			DiscoverFn: func(ctx context.Context, sourceURL string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		src := dlslog.NewLoggingURLSource(inner, logger)
		_, err := src.Discover(context.Background(), "https://example.com")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "url discovery")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
