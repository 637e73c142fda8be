// Package s3 stores documents in Amazon S3 or any S3-compatible object store.
package s3

import (
	"bytes"
	"context"
	"errors"
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/fwojciec/docload"
)

var _ docload.FileSystem = (*FileSystem)(nil)

// Client abstracts the S3 API operations used by FileSystem.
// The *s3.Client type satisfies this interface.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// FileSystem implements docload.FileSystem on top of an S3 bucket.
//
// Storage paths are mapped to object keys under an optional prefix. The
// caller is responsible for configuring the client with credentials, region
// and endpoint.
type FileSystem struct {
	client Client
	bucket string
	prefix string
}

// NewFileSystem creates an S3-backed FileSystem. Pass "" for no prefix.
func NewFileSystem(client Client, bucket, prefix string) *FileSystem {
	return &FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Key returns the object key for a storage path. Separators are converted
// to slashes and a leading slash is dropped.
func (f *FileSystem) Key(p string) string {
	p = strings.TrimLeft(filepath.ToSlash(p), "/")
	if f.prefix == "" {
		return p
	}
	return f.prefix + "/" + p
}

// Exists reports whether an object is stored at path. Any failure to look
// the object up is reported as absent.
func (f *FileSystem) Exists(ctx context.Context, p string) bool {
	ok, _ := f.Lookup(ctx, p)
	return ok
}

// Lookup checks whether an object is stored at path via HeadObject. Unlike
// Exists it returns errors other than a missing key.
func (f *FileSystem) Lookup(ctx context.Context, p string) (bool, error) {
	_, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.Key(p)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WriteBytes uploads content to path with a single PutObject, replacing any
// existing object.
func (f *FileSystem) WriteBytes(ctx context.Context, p string, content []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(f.Key(p)),
		Body:          bytes.NewReader(content),
		ContentLength: aws.Int64(int64(len(content))),
		ContentType:   aws.String(contentType(p, content)),
	})
	return err
}

// CreateDirectory is a no-op: object stores have no directories.
func (f *FileSystem) CreateDirectory(context.Context, string) error {
	return nil
}

func contentType(p string, content []byte) string {
	if t := mime.TypeByExtension(path.Ext(filepath.ToSlash(p))); t != "" {
		return t
	}
	return http.DetectContentType(content)
}

// isNotFound reports whether err indicates the S3 object does not exist.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
