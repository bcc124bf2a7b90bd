package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Token is the bearer token presented on every request.
	Token    string
	LogLevel string
}

// ClientAdapter holds the connection to the server.
type ClientAdapter struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// ClientDB contains the local sqlite settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background settings.
type ClientWorkers struct {
	UploadConcurrency int
	RefreshDebounce   time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration and maps the fields the
// terminal client needs. The DSN defaults to a sqlite file in the working
// directory.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = "file:policy-desk.db?_foreign_keys=on"
	}

	return &ClientConfig{
		App: ClientApp{
			Token:    cfg.App.Token,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dsn},
		},
		Workers: ClientWorkers{
			UploadConcurrency: cfg.Workers.UploadConcurrency,
			RefreshDebounce:   cfg.Workers.RefreshDebounce,
		},
	}
}
