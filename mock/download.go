package mock

import (
	"context"

	"github.com/fwojciec/docload"
)

var _ docload.DownloadService = (*DownloadService)(nil)

// DownloadService is a mock implementation of docload.DownloadService.
type DownloadService struct {
	CreateDownloadFn   func(ctx context.Context, d *docload.Download) error
	FindDownloadByIDFn func(ctx context.Context, id string) (*docload.Download, error)
	FindDownloadsFn    func(ctx context.Context, filter docload.DownloadFilter) ([]*docload.Download, error)
	DeleteDownloadFn   func(ctx context.Context, id string) error
}

func (s *DownloadService) CreateDownload(ctx context.Context, d *docload.Download) error {
	return s.CreateDownloadFn(ctx, d)
}

func (s *DownloadService) FindDownloadByID(ctx context.Context, id string) (*docload.Download, error) {
	return s.FindDownloadByIDFn(ctx, id)
}

func (s *DownloadService) FindDownloads(ctx context.Context, filter docload.DownloadFilter) ([]*docload.Download, error) {
	return s.FindDownloadsFn(ctx, filter)
}

func (s *DownloadService) DeleteDownload(ctx context.Context, id string) error {
	return s.DeleteDownloadFn(ctx, id)
}
