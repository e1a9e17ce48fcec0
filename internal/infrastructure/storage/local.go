package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes objects under a directory on disk. The directory is
// expected to be served statically at PublicBaseURL.
type LocalStore struct {
	Dir           string
	PublicBaseURL string
}

// NewLocalStore creates a disk-backed object store
func NewLocalStore(dir, publicBaseURL string) *LocalStore {
	return &LocalStore{Dir: dir, PublicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Upload writes the object to <dir>/<bucket>/<key> and returns its public URL
func (s *LocalStore) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error) {
	dst := filepath.Join(s.Dir, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.PublicBaseURL, bucket, key), nil
}
