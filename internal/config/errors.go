package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent.
var (
	// ErrInvalidAdapterConfigs indicates a missing server URL or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBlobConfigs indicates an unknown blob driver or a driver
	// missing its required settings.
	ErrInvalidBlobConfigs = errors.New("invalid blob storage configuration")
	// ErrInvalidAppConfigs indicates missing application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a negative upload concurrency.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrUnsupportedConfigFile is returned for a config file extension other
	// than .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
