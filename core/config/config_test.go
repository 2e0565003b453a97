package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"stack-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("IMMICH_API_KEY", "key-from-env")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.Immich.APIKey)
	assert.Equal(t, "http://localhost:2283", cfg.Immich.BaseURL)
	assert.Equal(t, 1000, cfg.Immich.PageSize)
	assert.Equal(t, 30, cfg.Immich.TimeoutSeconds)
	assert.Zero(t, cfg.Immich.RequestsPerSecond)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Empty(t, cfg.Server.Schedule)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "plans", cfg.Storage.Prefix)
	assert.NoError(t, cfg.Immich.Validate())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("IMMICH_API_KEY", "k")
	t.Setenv("IMMICH_BASE_URL", "https://photos.example.com")
	t.Setenv("IMMICH_PAGE_SIZE", "250")
	t.Setenv("IMMICH_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("STORAGE_ENABLED", "true")
	t.Setenv("SERVER_SCHEDULE", "0 3 * * *")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://photos.example.com", cfg.Immich.BaseURL)
	assert.Equal(t, 250, cfg.Immich.PageSize)
	assert.Equal(t, 2.5, cfg.Immich.RequestsPerSecond)
	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "0 3 * * *", cfg.Server.Schedule)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	t.Setenv("IMMICH_API_KEY", "")
	dir := t.TempDir()
	writeFile(t, dir, ".env", "IMMICH_API_KEY=key-from-dotenv\n")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "key-from-dotenv", cfg.Immich.APIKey)
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("IMMICH_PAGE_SIZE", "")
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
immich:
  base_url: http://immich.lan:2283
log:
  format: json
`)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://immich.lan:2283", cfg.Immich.BaseURL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "immich: [unterminated")

	_, err := config.LoadConfig(dir)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("IMMICH_API_KEY", "")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, cfg.Immich.Validate())
}
