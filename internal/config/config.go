// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Blob storage drivers.
const (
	BlobDriverFile  = "file"
	BlobDriverS3    = "s3"
	BlobDriverMinIO = "minio"
)

// StructuredConfig is the merged configuration of the policy-desk server and
// the terminal client. It is populated from defaults, environment variables,
// command-line flags and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env      : variable name for scalar fields.
type StructuredConfig struct {
	// App holds token verification settings, the version and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the database, blob store and change feed backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen addresses and the per-request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection to the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional JSON or YAML config file, chosen by extension.
	// Env: CONFIG, flags: -c / -config
	FilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// TokenSignKey verifies bearer tokens minted by the identity service.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim. Empty disables the check.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Token is the bearer token the client presents to the server.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups every persistence backend.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Blob  Blob  `envPrefix:"BLOB_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is the Postgres URL on the server and the sqlite DSN on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Blob configures where uploaded attachments are stored.
type Blob struct {
	// Driver is one of "file", "s3" or "minio".
	// Env: STORAGE_BLOB_DRIVER
	Driver string `env:"DRIVER"`

	// Bucket is the object store bucket (s3, minio).
	// Env: STORAGE_BLOB_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the AWS region (s3).
	// Env: STORAGE_BLOB_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the object store endpoint; for s3 it switches on
	// path-style addressing for local stacks.
	// Env: STORAGE_BLOB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are static credentials (s3, minio).
	// Env: STORAGE_BLOB_ACCESS_KEY, STORAGE_BLOB_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// UseSSL enables TLS for the minio client.
	// Env: STORAGE_BLOB_USE_SSL
	UseSSL bool `env:"USE_SSL"`

	// Dir is the root directory of the file driver.
	// Env: STORAGE_BLOB_DIR
	Dir string `env:"DIR"`

	// PublicURL prefixes every object key to form the durable reference.
	// Env: STORAGE_BLOB_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// Redis configures the change feed. An empty Addr selects the in-process
// feed.
type Redis struct {
	// Env: STORAGE_REDIS_ADDR
	Addr string `env:"ADDR"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the listen address of the HTTP API.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps one attachment upload, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// ServerURL is the base URL of the policy-desk server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request. The change stream is
	// not subject to it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds client background settings.
type Workers struct {
	// UploadConcurrency caps parallel attachment uploads. Zero means no cap.
	// Env: WORKERS_UPLOAD_CONCURRENCY
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY"`

	// RefreshDebounce delays a dashboard refetch after a change event so
	// bursts collapse into one request.
	// Env: WORKERS_REFRESH_DEBOUNCE
	RefreshDebounce time.Duration `env:"REFRESH_DEBOUNCE"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev", LogLevel: "debug"},
		Storage: Storage{
			Blob: Blob{Driver: BlobDriverFile, Dir: "./blobs", Region: "us-east-1"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  10 << 20,
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{UploadConcurrency: 4, RefreshDebounce: 150 * time.Millisecond},
	}
}

// GetStructuredConfig loads and validates the server configuration.
// Sources are merged in this order, later non-zero values win:
//  1. built-in defaults
//  2. the version stamped into the binary, if any
//  3. environment variables
//  4. command-line flags
//  5. config file (path resolved from sources 3 and 4)
func GetStructuredConfig(buildVersion string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withBuildVersion(buildVersion).
		withEnv().
		withFlags().
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}
