package store

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

type minioBlobStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewMinIOBlobStore connects to a MinIO server at cfg.Endpoint (host:port,
// no scheme) and makes sure the bucket exists.
func NewMinIOBlobStore(ctx context.Context, cfg config.Blob, logger *logger.Logger) (BlobStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		logger.Err(err).Str("func", "NewMinIOBlobStore").Msg("error creating minio client")
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logger.Err(err).Str("func", "NewMinIOBlobStore").Msg("error checking bucket")
		return nil, fmt.Errorf("error checking bucket: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			logger.Err(err).Str("func", "NewMinIOBlobStore").Str("bucket", cfg.Bucket).Msg("error creating bucket")
			return nil, fmt.Errorf("error creating bucket: %w", err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = blobURL(client.EndpointURL().String(), cfg.Bucket)
	}

	return &minioBlobStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

func (s *minioBlobStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanBlobKey(key)
	if err != nil {
		return "", err
	}

	if _, err = s.client.PutObject(ctx, s.bucket, key, body, size, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "minioBlobStore.Put").Str("key", key).Msg("failed to put object")
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}

	return blobURL(s.publicURL, key), nil
}
