// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the server view of the merged configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if err := cfg.Storage.Blob.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.MaxUploadSize < 0 {
		return fmt.Errorf("%w: max upload size must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (b Blob) validate() error {
	switch b.Driver {
	case BlobDriverFile:
		if b.Dir == "" {
			return fmt.Errorf("%w: blob dir is required for the file driver", ErrInvalidBlobConfigs)
		}
	case BlobDriverS3:
		if b.Bucket == "" || b.Region == "" {
			return fmt.Errorf("%w: bucket and region are required for s3", ErrInvalidBlobConfigs)
		}
	case BlobDriverMinIO:
		if b.Bucket == "" || b.Endpoint == "" {
			return fmt.Errorf("%w: bucket and endpoint are required for minio", ErrInvalidBlobConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidBlobConfigs, b.Driver)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.UploadConcurrency < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
