package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newTestBuilder().
		add("first", &StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}}).
		add("second", &StructuredConfig{App: App{TokenIssuer: "second"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, BlobDriverFile, cfg.Storage.Blob.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 4, cfg.Workers.UploadConcurrency)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_BLOB_DRIVER", "s3")

	cfg, err := newTestBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, BlobDriverS3, cfg.Storage.Blob.Driver)
	assert.Equal(t, "./blobs", cfg.Storage.Blob.Dir, "defaults survive")
}

func TestWithFlags_OverrideEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	cfg, err := newTestBuilder("-token-issuer", "flag-issuer").withEnv().withFlags().build()
	require.NoError(t, err)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newTestBuilder("-bogus").withFlags()
	assert.Error(t, b.err)
}

func TestWithFile_NoOpWhenNoPathSet(t *testing.T) {
	b := newTestBuilder().add("empty", &StructuredConfig{}).withFile()

	assert.Len(t, b.layers, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_JSONFromFlag(t *testing.T) {
	path := writeTempConfig(t, "cfg.json", `{"app":{"version":"json-version"}}`)

	cfg, err := newTestBuilder("-c", path).withFlags().withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "json-version", cfg.App.Version)
}

func TestWithFile_YAMLFromEnv(t *testing.T) {
	path := writeTempConfig(t, "cfg.yaml", "storage:\n  redis:\n    addr: localhost:6379\n")
	t.Setenv("CONFIG", path)

	cfg, err := newTestBuilder().withEnv().withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
}

func TestWithFile_SetsErrorWhenMissing(t *testing.T) {
	b := newTestBuilder().add("env", &StructuredConfig{FilePath: "/nonexistent/config.json"}).withFile()

	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "file /nonexistent/config.json")
}

func TestWithBuildVersion(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().withBuildVersion("1.4.0").build()
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", cfg.App.Version)

	t.Setenv("APP_VERSION", "1.4.1-hotfix")
	cfg, err = newTestBuilder().withDefaults().withBuildVersion("1.4.0").withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "1.4.1-hotfix", cfg.App.Version, "env wins over the build stamp")

	cfg, err = newTestBuilder().withDefaults().withBuildVersion("N/A").build()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.App.Version)
}

// ── validation ────────────────────────────────────────────────────────────────

func validServerConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/policies"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.Blob.Driver = "ftp" }, wantErr: ErrInvalidBlobConfigs},
		{
			name:    "s3 without bucket",
			mutate:  func(c *StructuredConfig) { c.Storage.Blob.Driver = BlobDriverS3 },
			wantErr: ErrInvalidBlobConfigs,
		},
		{
			name: "minio complete",
			mutate: func(c *StructuredConfig) {
				c.Storage.Blob = Blob{Driver: BlobDriverMinIO, Bucket: "docs", Endpoint: "localhost:9000"}
			},
		},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "negative upload size", mutate: func(c *StructuredConfig) { c.Server.MaxUploadSize = -1 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := newClientConfig(defaults())
	require.NoError(t, cfg.validate())
	assert.Contains(t, cfg.Storage.DB.DSN, "policy-desk.db")

	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = newClientConfig(defaults())
	cfg.Adapter.ServerURL = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = newClientConfig(defaults())
	cfg.Workers.UploadConcurrency = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
