package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, DriverStub, cfg.Store.Driver)
	assert.Equal(t, 200*time.Millisecond, cfg.StubDelay())
	assert.Equal(t, "c-1", cfg.Seed.UID)
	assert.Equal(t, "United Kingdom", cfg.Seed.Name)
	assert.Equal(t, "UK", cfg.Seed.Code)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
http_port: "9090"
stub_delay_ms: 10
store:
  driver: sqlite
  sqlite_path: /tmp/edit.db
seed:
  uid: c-9
  name: France
  code: FR
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/edit.db", cfg.Store.SQLitePath)
	assert.Equal(t, 10*time.Millisecond, cfg.StubDelay())
	assert.Equal(t, "France", cfg.Seed.Name)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"9090\"\n"), 0o600))
	t.Setenv(EnvConfigPath, path)
	t.Setenv("COUNTRY_EDIT_HTTP_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.HTTPPort)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("COUNTRY_EDIT_STORE_DRIVER", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestLoad_SpannerRequiresDatabase(t *testing.T) {
	t.Setenv("COUNTRY_EDIT_STORE_DRIVER", DriverSpanner)

	_, err := Load()
	assert.ErrorContains(t, err, "requires a database")
}
