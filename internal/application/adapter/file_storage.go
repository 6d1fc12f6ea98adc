package adapter

import (
	"context"
	"io"
)

// FileStorage defines the interface for storing uploaded progress images.
type FileStorage interface {
	// Save stores the file content under the given name and returns the
	// public URL the stored file is served from.
	Save(ctx context.Context, name string, content io.Reader, size int64) (string, error)
}
