// Package prometheus exposes download metrics through the Prometheus client.
package prometheus

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/docload"
	dlhttp "github.com/fwojciec/docload/http"
	"github.com/prometheus/client_golang/prometheus"
)

// Download results used as the "result" label.
const (
	ResultSuccess     = "success"
	ResultStatusError = "status_error"
	ResultError       = "error"
)

// Metrics holds the docload collectors.
type Metrics struct {
	downloads    *prometheus.CounterVec
	duration     prometheus.Histogram
	writtenBytes prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		downloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docload_downloads_total",
				Help: "Total downloads by result.",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "docload_download_duration_seconds",
				Help:    "Download duration including the storage write.",
				Buckets: prometheus.DefBuckets,
			},
		),
		writtenBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docload_written_bytes_total",
				Help: "Total bytes written to storage.",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.downloads, m.duration, m.writtenBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Downloader wraps next so every download is counted and timed.
func (m *Metrics) Downloader(next docload.Downloader) docload.Downloader {
	return &downloader{next: next, metrics: m}
}

// FileSystem wraps next so written bytes are counted.
func (m *Metrics) FileSystem(next docload.FileSystem) docload.FileSystem {
	return &fileSystem{next: next, metrics: m}
}

// WriteTextfile writes everything gathered by g to path in the text
// exposition format, for the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

func result(err error) string {
	if err == nil {
		return ResultSuccess
	}
	var statusErr *dlhttp.StatusError
	if errors.As(err, &statusErr) {
		return ResultStatusError
	}
	return ResultError
}

type downloader struct {
	next    docload.Downloader
	metrics *Metrics
}

func (d *downloader) Download(ctx context.Context, url, destination string) (err error) {
	defer func(begin time.Time) {
		d.metrics.duration.Observe(time.Since(begin).Seconds())
		d.metrics.downloads.WithLabelValues(result(err)).Inc()
	}(time.Now())
	return d.next.Download(ctx, url, destination)
}

type fileSystem struct {
	next    docload.FileSystem
	metrics *Metrics
}

func (f *fileSystem) Exists(ctx context.Context, path string) bool {
	return f.next.Exists(ctx, path)
}

func (f *fileSystem) WriteBytes(ctx context.Context, path string, content []byte) error {
	if err := f.next.WriteBytes(ctx, path, content); err != nil {
		return err
	}
	f.metrics.writtenBytes.Add(float64(len(content)))
	return nil
}

func (f *fileSystem) CreateDirectory(ctx context.Context, path string) error {
	return f.next.CreateDirectory(ctx, path)
}
