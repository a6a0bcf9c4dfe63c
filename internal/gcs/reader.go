// Package gcs reads PDF objects from Google Cloud Storage. The client is
// constructed once at process start and injected into the resolver, so
// there is no lazily-initialized global and no first-use race.
package gcs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/dtnitsch/docstats/models"
)

type Reader struct {
	client *storage.Client
}

// NewReader builds a Reader using ambient credentials (ADC). Construction
// fails when no credentials are available; callers may then run without
// storage-backed sources.
func NewReader(ctx context.Context) (*Reader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &Reader{client: client}, nil
}

// Close releases the underlying client.
func (r *Reader) Close() error {
	return r.client.Close()
}

// SplitURI splits gs://bucket/object-path into its bucket and object parts.
func SplitURI(uri string) (bucket, object string, err error) {
	trimmed := strings.TrimPrefix(uri, models.GCSScheme)
	if trimmed == uri {
		return "", "", fmt.Errorf("URI does not start with %s: %s", models.GCSScheme, uri)
	}
	bucket, object, found := strings.Cut(trimmed, "/")
	if !found || bucket == "" || object == "" {
		return "", "", fmt.Errorf("URI must name a bucket and an object path: %s", uri)
	}
	return bucket, object, nil
}

// Download returns the bytes of the object named by a gs:// URI. The read
// blocks the calling goroutine only; concurrent requests are unaffected.
func (r *Reader) Download(ctx context.Context, uri string) ([]byte, error) {
	bucket, object, err := SplitURI(uri)
	if err != nil {
		return nil, err
	}

	rc, err := r.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}
	return data, nil
}
