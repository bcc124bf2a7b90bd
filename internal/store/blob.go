package store

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

// NewBlobStore selects the attachment backend named by cfg.Driver.
func NewBlobStore(ctx context.Context, cfg config.Blob, logger *logger.Logger) (BlobStore, error) {
	switch cfg.Driver {
	case config.BlobDriverS3:
		return NewS3BlobStore(ctx, cfg, logger)
	case config.BlobDriverMinIO:
		return NewMinIOBlobStore(ctx, cfg, logger)
	case config.BlobDriverFile, "":
		return NewFileBlobStore(cfg, logger)
	}

	return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
}

// cleanBlobKey rejects keys that are empty, absolute or climb out of the
// bucket. Spaces and other characters are kept as given.
func cleanBlobKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidBlobPath
	}

	cleaned := path.Clean(key)
	if cleaned == "." || cleaned != key {
		return "", ErrInvalidBlobPath
	}
	for _, segment := range strings.Split(cleaned, "/") {
		if segment == ".." {
			return "", ErrInvalidBlobPath
		}
	}

	return cleaned, nil
}

// blobURL joins base and the escaped key.
func blobURL(base, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}
