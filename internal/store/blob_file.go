package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

const defaultFileBlobURL = "/blobs"

// fileBlobStore keeps attachments under a local directory. The HTTP server
// serves the same directory under /blobs/.
type fileBlobStore struct {
	dir       string
	publicURL string
	logger    *logger.Logger
}

// NewFileBlobStore creates cfg.Dir if needed.
func NewFileBlobStore(cfg config.Blob, logger *logger.Logger) (BlobStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		logger.Err(err).Str("func", "NewFileBlobStore").Str("dir", cfg.Dir).Msg("error creating blob directory")
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = defaultFileBlobURL
	}

	logger.Debug().Str("dir", cfg.Dir).Msg("creating file blob store")
	return &fileBlobStore{dir: cfg.Dir, publicURL: publicURL, logger: logger}, nil
}

// Put writes to a temporary file and renames it into place, so a failed
// upload never leaves a partial object behind.
func (s *fileBlobStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanBlobKey(key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if err = os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}

	logger.FromContext(ctx).Debug().Str("key", key).Msg("blob stored")
	return blobURL(s.publicURL, key), nil
}
