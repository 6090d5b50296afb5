package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "talent-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"DB_HOST", "DB_NAME", "DB_USER", "REDIS_HOST", "REDIS_PORT", "MATCH_WORKERS", "MATCH_CACHE_TTL", "MATCH_DEFAULT_LIMIT", "MATCH_MAX_LIMIT", "JWT_ACCESS_EXPIRES_IN"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "talent-match", cfg.App.AppName)
	require.Equal(t, 8, cfg.Matching.Workers)
	require.Equal(t, 5*time.Minute, cfg.Matching.CacheTTL)
	require.Equal(t, 20, cfg.Matching.DefaultLimit)
	require.Equal(t, 100, cfg.Matching.MaxLimit)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	require.False(t, cfg.Database.Configured())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_WORKERS", "3")
	t.Setenv("MATCH_DEFAULT_LIMIT", "50")
	t.Setenv("MATCH_MAX_LIMIT", "10")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "talent")
	t.Setenv("DB_USER", "talent")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Matching.Workers)
	require.Equal(t, 50, cfg.Matching.MaxLimit)
	require.True(t, cfg.Database.Configured())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadCLI_IgnoresServerSettings(t *testing.T) {
	for _, k := range []string{"APP_NAME", "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("DB_HOST", "db")
	t.Setenv("MATCH_WORKERS", "2")

	cfg, err := LoadCLI()
	require.NoError(t, err)
	require.Equal(t, "db", cfg.Database.DBHost)
	require.Equal(t, 2, cfg.Matching.Workers)
}
