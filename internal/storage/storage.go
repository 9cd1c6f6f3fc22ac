package storage

import (
	"context"
	"errors"
)

// ErrObjectNotFound reports that the requested key does not exist in the
// bucket (or the bucket itself is absent).
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage captures the minimal S3-compatible operations the pipeline needs.
type ObjectStorage interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}
