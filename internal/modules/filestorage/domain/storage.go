package domain

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded files live. Implemented by the S3
// and local-filesystem adapters.
type FileStorage interface {
	// UploadFile stores the file under key and returns its public URL.
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)

	DeleteFile(ctx context.Context, key string) error

	// GetPresignedURL generates a temporary URL for reading a file.
	GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)

	// GetKeyFromURL extracts the storage key from a public URL.
	GetKeyFromURL(url string) (string, error)
}
