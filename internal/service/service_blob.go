package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
)

type blobService struct {
	blobs store.BlobStore

	logger *logger.Logger
}

func NewBlobService(blobs store.BlobStore, logger *logger.Logger) BlobService {
	return &blobService{blobs: blobs, logger: logger}
}

// Upload writes body under the caller's own key space, "<user id>/<path>".
// Re-uploading a path replaces only the caller's object; another agent,
// read-only share recipients included, can never address it.
func (b *blobService) Upload(ctx context.Context, identity models.Identity, path string, body io.Reader, size int64, contentType string) (string, error) {
	if identity.IsZero() {
		return "", ErrNoIdentity
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	path = ownedBlobKey(identity, path)

	url, err := b.blobs.Put(ctx, path, body, size, contentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blobService.Upload").
			Str("path", path).
			Int64("size", size).
			Msg("error uploading blob")
		return "", fmt.Errorf("error uploading blob: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("path", path).Str("user_id", identity.UserID).Msg("blob uploaded")
	return url, nil
}

// ownedBlobKey prefixes path with the caller's sanitized user id. The store
// still rejects the joined key if path is absolute or climbs out.
func ownedBlobKey(identity models.Identity, path string) string {
	return SafeFileName(identity.UserID) + "/" + path
}
