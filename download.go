package docload

import (
	"context"
	"time"
)

// Download records a completed transfer of a URL to a storage path.
type Download struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the download contains invalid fields.
func (d *Download) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "download URL required")
	}
	if d.Path == "" {
		return Errorf(EINVALID, "download path required")
	}
	return nil
}

// DownloadService represents a service for managing the download ledger.
type DownloadService interface {
	// CreateDownload records a new download.
	CreateDownload(ctx context.Context, d *Download) error

	// FindDownloadByID retrieves a download by ID.
	// Returns ENOTFOUND if the download does not exist.
	FindDownloadByID(ctx context.Context, id string) (*Download, error)

	// FindDownloads retrieves downloads matching the filter, newest first.
	FindDownloads(ctx context.Context, filter DownloadFilter) ([]*Download, error)

	// DeleteDownload removes a download record. The stored file is untouched.
	// Returns ENOTFOUND if the download does not exist.
	DeleteDownload(ctx context.Context, id string) error
}

// DownloadFilter represents a filter for FindDownloads.
type DownloadFilter struct {
	URL  *string `json:"url"`
	Path *string `json:"path"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
