package ingest

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docload"
)

// Recorder writes a ledger entry for every completed download.
//
// It wraps both the file system a downloader writes through and the
// downloader itself, so the written bytes are measured without reading them
// back from storage. A Recorder is not safe for concurrent use.
type Recorder struct {
	downloads docload.DownloadService
	writes    map[string]recordedWrite
}

type recordedWrite struct {
	size int64
	hash string
}

// NewRecorder creates a Recorder that stores entries in downloads.
func NewRecorder(downloads docload.DownloadService) *Recorder {
	return &Recorder{
		downloads: downloads,
		writes:    make(map[string]recordedWrite),
	}
}

// ContentHash returns the hex-encoded xxHash of content.
func ContentHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// FileSystem wraps next so successful writes are measured.
func (r *Recorder) FileSystem(next docload.FileSystem) docload.FileSystem {
	return &recordingFileSystem{next: next, recorder: r}
}

// Downloader wraps next so successful downloads are recorded. Download
// errors are returned unchanged; ledger errors are wrapped.
func (r *Recorder) Downloader(next docload.Downloader) docload.Downloader {
	return &recordingDownloader{next: next, recorder: r}
}

type recordingFileSystem struct {
	next     docload.FileSystem
	recorder *Recorder
}

func (f *recordingFileSystem) Exists(ctx context.Context, path string) bool {
	return f.next.Exists(ctx, path)
}

func (f *recordingFileSystem) WriteBytes(ctx context.Context, path string, content []byte) error {
	if err := f.next.WriteBytes(ctx, path, content); err != nil {
		return err
	}
	f.recorder.writes[path] = recordedWrite{
		size: int64(len(content)),
		hash: ContentHash(content),
	}
	return nil
}

func (f *recordingFileSystem) CreateDirectory(ctx context.Context, path string) error {
	return f.next.CreateDirectory(ctx, path)
}

type recordingDownloader struct {
	next     docload.Downloader
	recorder *Recorder
}

func (d *recordingDownloader) Download(ctx context.Context, url, destination string) error {
	delete(d.recorder.writes, destination)

	if err := d.next.Download(ctx, url, destination); err != nil {
		return err
	}

	w := d.recorder.writes[destination]
	delete(d.recorder.writes, destination)

	dl := &docload.Download{
		URL:         url,
		Path:        destination,
		Size:        w.size,
		ContentHash: w.hash,
	}
	if err := d.recorder.downloads.CreateDownload(ctx, dl); err != nil {
		return fmt.Errorf("record download of %s: %w", url, err)
	}
	return nil
}
