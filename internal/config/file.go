package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of a JSON or YAML config file.
type FileConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer" yaml:"token_issuer"`
		Token        string `json:"token" yaml:"token"`
		Version      string `json:"version" yaml:"version"`
		LogLevel     string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`

		Blob struct {
			Driver    string `json:"driver" yaml:"driver"`
			Bucket    string `json:"bucket" yaml:"bucket"`
			Region    string `json:"region" yaml:"region"`
			Endpoint  string `json:"endpoint" yaml:"endpoint"`
			AccessKey string `json:"access_key" yaml:"access_key"`
			SecretKey string `json:"secret_key" yaml:"secret_key"`
			UseSSL    bool   `json:"use_ssl" yaml:"use_ssl"`
			Dir       string `json:"dir" yaml:"dir"`
			PublicURL string `json:"public_url" yaml:"public_url"`
		} `json:"blob" yaml:"blob"`

		Redis struct {
			Addr     string `json:"addr" yaml:"addr"`
			Password string `json:"password" yaml:"password"`
			DB       int    `json:"db" yaml:"db"`
		} `json:"redis" yaml:"redis"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size" yaml:"max_upload_size"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		ServerURL      string   `json:"server_url" yaml:"server_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		UploadConcurrency int      `json:"upload_concurrency" yaml:"upload_concurrency"`
		RefreshDebounce   Duration `json:"refresh_debounce" yaml:"refresh_debounce"`
	} `json:"workers" yaml:"workers"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fileCfg.structured(), nil
}

func (f FileConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey: f.App.TokenSignKey,
			TokenIssuer:  f.App.TokenIssuer,
			Token:        f.App.Token,
			Version:      f.App.Version,
			LogLevel:     f.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: f.Storage.DB.DSN},
			Blob: Blob{
				Driver:    f.Storage.Blob.Driver,
				Bucket:    f.Storage.Blob.Bucket,
				Region:    f.Storage.Blob.Region,
				Endpoint:  f.Storage.Blob.Endpoint,
				AccessKey: f.Storage.Blob.AccessKey,
				SecretKey: f.Storage.Blob.SecretKey,
				UseSSL:    f.Storage.Blob.UseSSL,
				Dir:       f.Storage.Blob.Dir,
				PublicURL: f.Storage.Blob.PublicURL,
			},
			Redis: Redis{
				Addr:     f.Storage.Redis.Addr,
				Password: f.Storage.Redis.Password,
				DB:       f.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			MaxUploadSize:  f.Server.MaxUploadSize,
		},
		Adapter: Adapter{
			ServerURL:      f.Adapter.ServerURL,
			RequestTimeout: time.Duration(f.Adapter.RequestTimeout),
		},
		Workers: Workers{
			UploadConcurrency: f.Workers.UploadConcurrency,
			RefreshDebounce:   time.Duration(f.Workers.RefreshDebounce),
		},
	}
}

// Duration accepts "30s"-style strings or integer nanoseconds in JSON and
// YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
