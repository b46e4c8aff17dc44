package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by a BlobStore when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// BlobStore saves, reads and deletes binary objects addressed by a generated key.
type BlobStore interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) (int64, error)
	Open(ctx context.Context, key string) (io.ReadCloser, int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
