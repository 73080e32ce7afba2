// Package storage archives analyzed uploads to a local directory or S3.
// Archiving is best effort: the analysis response never depends on it.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Archive stores copies of analyzed documents. Archived files are inspected
// out of band; the service itself only writes.
type Archive interface {
	// Store saves a document and returns the archive path.
	Store(ctx context.Context, id uuid.UUID, filename string, data io.Reader) (string, error)
}

// BackendType selects the archive backend.
type BackendType string

const (
	BackendLocal BackendType = "local"
	BackendS3    BackendType = "s3"
)

// Config holds archive configuration.
type Config struct {
	Type         BackendType
	LocalPath    string // for local archives
	S3Bucket     string // for S3 archives
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// New creates an archive for the given configuration.
func New(cfg Config) (Archive, error) {
	switch cfg.Type {
	case BackendLocal:
		return NewLocalArchive(cfg.LocalPath)
	case BackendS3:
		return NewS3Archive(cfg)
	default:
		return nil, fmt.Errorf("unknown archive backend: %s", cfg.Type)
	}
}

// NewFromEnv creates an archive from environment variables. STORAGE_TYPE
// defaults to local so the service runs with zero infrastructure.
func NewFromEnv() (Archive, error) {
	backend := os.Getenv("STORAGE_TYPE")
	if backend == "" {
		backend = string(BackendLocal)
	}

	switch BackendType(backend) {
	case BackendLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/uploads"
		}
		return NewLocalArchive(localPath)

	case BackendS3:
		cfg := Config{
			Type:         BackendS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "us-east-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 archiving")
		}
		return NewS3Archive(cfg)

	default:
		return nil, fmt.Errorf("unknown archive backend: %s", backend)
	}
}

// archivePath builds a unique path for an upload, keyed by id so repeated
// uploads of the same filename never collide.
func archivePath(id uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)
	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = strings.ReplaceAll(baseName, "/", "_")
	baseName = strings.ReplaceAll(baseName, "\\", "_")

	return fmt.Sprintf("%s/%s_%s%s", id.String()[:2], id.String(), baseName, ext)
}
