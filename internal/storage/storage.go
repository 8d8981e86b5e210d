package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

// BlobStore holds the rendered outputs of a job, keyed by object name
// relative to the store root.
type BlobStore interface {
	Exists(ctx context.Context, name string) (bool, error)
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, body []byte, contentType string) error
	Delete(ctx context.Context, name string) error
	// Location renders name as a URI for logs and notifications.
	Location(name string) string
}
