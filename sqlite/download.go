package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/docload"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docload.DownloadService = (*DownloadService)(nil)

// DownloadService implements docload.DownloadService using SQLite.
type DownloadService struct {
	db *DB
}

// NewDownloadService creates a new DownloadService.
func NewDownloadService(db *DB) *DownloadService {
	return &DownloadService{db: db}
}

// CreateDownload records a new download with a generated ID. FetchedAt is
// set to the current time unless the caller supplied one.
func (s *DownloadService) CreateDownload(ctx context.Context, d *docload.Download) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.ID = uuid.New().String()
	if d.FetchedAt.IsZero() {
		d.FetchedAt = time.Now()
	}
	d.FetchedAt = d.FetchedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO downloads (id, url, path, size, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.ID, d.URL, d.Path, d.Size, d.ContentHash, formatTime(d.FetchedAt))

	return err
}

// FindDownloadByID retrieves a download by ID.
func (s *DownloadService) FindDownloadByID(ctx context.Context, id string) (*docload.Download, error) {
	var d docload.Download
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, path, size, content_hash, fetched_at
		FROM downloads
		WHERE id = ?
	`, id).Scan(&d.ID, &d.URL, &d.Path, &d.Size, &d.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, docload.Errorf(docload.ENOTFOUND, "download not found")
	}
	if err != nil {
		return nil, err
	}

	d.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// FindDownloads retrieves downloads matching the filter, newest first.
func (s *DownloadService) FindDownloads(ctx context.Context, filter docload.DownloadFilter) ([]*docload.Download, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, path, size, content_hash, fetched_at FROM downloads WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var downloads []*docload.Download
	for rows.Next() {
		var d docload.Download
		var fetchedAt string

		if err := rows.Scan(&d.ID, &d.URL, &d.Path, &d.Size, &d.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		d.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		downloads = append(downloads, &d)
	}

	return downloads, rows.Err()
}

// DeleteDownload removes a download record. The stored file is untouched.
func (s *DownloadService) DeleteDownload(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM downloads WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docload.Errorf(docload.ENOTFOUND, "download not found")
	}

	return nil
}
