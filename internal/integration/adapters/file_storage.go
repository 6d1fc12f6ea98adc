package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/team-dashboard/backend/internal/application/adapter"
)

// localFileStorage implements adapter.FileStorage on the local
// filesystem. Stored files are served under the configured base URL.
type localFileStorage struct {
	dir     string
	baseURL string
}

// NewLocalFileStorage creates a new local file storage instance.
func NewLocalFileStorage(dir, baseURL string) (adapter.FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &localFileStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save stores the file content under the given name and returns the URL
// it is served from. The name is flattened to its base to keep writes
// inside the uploads directory.
func (s *localFileStorage) Save(ctx context.Context, name string, content io.Reader, size int64) (string, error) {
	name = filepath.Base(name)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.CopyN(f, content, size); err != nil && err != io.EOF {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
