// Package storage abstracts the object store that evidence photos, ministry
// photos and profile avatars are uploaded to. Keys carry a random component so
// concurrent uploads never collide.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"citizens-voice-http-service/internal/infrastructure/config"

	"github.com/google/uuid"
)

// Buckets the application uploads into.
const (
	BucketReportEvidence = "report-evidence"
	BucketMinistryPhotos = "ministry-photos"
	BucketAvatars        = "avatars"
)

// ObjectStore stores uploaded files and hands back their public URL.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error)
}

// NewObjectStore picks the backend from configuration.
func NewObjectStore(cfg *config.Config) (ObjectStore, error) {
	switch cfg.StorageDriver {
	case "s3":
		return NewS3Store(context.Background(), cfg)
	case "local", "":
		return NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// BuildKey generates a random object key preserving the original file
// extension, optionally scoped under a path prefix (e.g. a per-user folder).
func BuildKey(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// ValidBucket reports whether the bucket is one the application manages.
func ValidBucket(bucket string) bool {
	switch bucket {
	case BucketReportEvidence, BucketMinistryPhotos, BucketAvatars:
		return true
	}
	return false
}
