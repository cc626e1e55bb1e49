package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage stores objects under slash-separated keys.
type FileStorage interface {
	// Upload uploads a file and returns its key
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)

	// Delete removes a file; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// GetURL generates a presigned/public URL
	GetURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	Exists(ctx context.Context, key string) (bool, error)
}
