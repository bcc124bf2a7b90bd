package store

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

type s3BlobStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
	logger    *logger.Logger
}

// NewS3BlobStore builds an S3 client. With an Endpoint set it talks
// path-style to a local S3-compatible stack with static credentials and
// creates the bucket when missing; otherwise it uses the default AWS
// credential chain.
func NewS3BlobStore(ctx context.Context, cfg config.Blob, logger *logger.Logger) (BlobStore, error) {
	var client *s3.Client

	if cfg.Endpoint != "" {
		client = s3.New(s3.Options{
			Region:       cfg.Region,
			Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket, logger); err != nil {
			return nil, err
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			logger.Err(err).Str("func", "NewS3BlobStore").Msg("error loading AWS config")
			return nil, fmt.Errorf("error loading AWS config: %w", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &s3BlobStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: s3PublicURL(cfg),
		logger:    logger,
	}, nil
}

func s3PublicURL(cfg config.Blob) string {
	switch {
	case cfg.PublicURL != "":
		return cfg.PublicURL
	case cfg.Endpoint != "":
		return blobURL(cfg.Endpoint, cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string, logger *logger.Logger) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err == nil {
		return nil
	}

	if _, err = client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(bucket)}); err != nil {
		logger.Err(err).Str("func", "createBucketIfNotExists").Str("bucket", bucket).Msg("error creating bucket")
		return fmt.Errorf("error creating bucket: %w", err)
	}

	logger.Info().Str("bucket", bucket).Msg("bucket created")
	return nil
}

func (s *s3BlobStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	key, err := cleanBlobKey(key)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3BlobStore.Put").Str("key", key).Msg("failed to put object")
		return "", fmt.Errorf("%w: %w", ErrUploadingBlob, err)
	}

	return blobURL(s.publicURL, key), nil
}
