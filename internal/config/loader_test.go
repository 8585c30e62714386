package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "skill-matrix", cfg.App.AppName)
	assert.Equal(t, "localhost", cfg.Database.DBHost)
	assert.Equal(t, int32(10), cfg.Database.PoolMaxConns)
	assert.Equal(t, time.Hour, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
	assert.Contains(t, err.Error(), "JWT_REFRESH_SECRET")
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", " db.internal ")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("REDIS_TTL", "30s")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "15m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.DBHost)
	assert.Equal(t, int32(25), cfg.Database.PoolMaxConns)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("app:\n  name: from-file\n  http_port: \"9000\"\ndatabase:\n  host: file-host\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("DB_HOST", "env-host")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.AppName)
	assert.Equal(t, "9000", cfg.App.HTTPPort)
	assert.Equal(t, "env-host", cfg.Database.DBHost)
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadTooling_SkipsServerSettings(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")
	t.Setenv("DB_NAME", "staffing")

	cfg, err := LoadTooling()
	require.NoError(t, err)
	assert.Equal(t, "staffing", cfg.Database.DBName)
}
