package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "LOG_LEVEL", "LOG_FORMAT",
	"API_BASE_URL", "MEDIA_BASE_URL", "API_TIMEOUT",
	"CHOICES_TTL", "QUERY_STALE_TIME", "CACHE_KEY_PREFIX",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
}

// clearEnv снимает переменные на время теста, t.Setenv вернет их обратно
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, defaultMediaBaseURL, cfg.MediaBaseURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, 5*time.Minute, cfg.ChoicesTTL)
	assert.Zero(t, cfg.QueryStaleTime)
	assert.Equal(t, "incident-console", cfg.CacheKeyPrefix)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "https://incidents.example.com/api/v1/incident_reporting")
	t.Setenv("API_TIMEOUT", "10s")
	t.Setenv("QUERY_STALE_TIME", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://incidents.example.com/api/v1/incident_reporting", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 30*time.Second, cfg.QueryStaleTime)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("CHOICES_TTL", "-")
	t.Setenv("REDIS_DB", "first")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, 5*time.Minute, cfg.ChoicesTTL)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfig_NonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TIMEOUT", "0s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
}

func TestLoadConfig_RejectsRelativeURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_BASE_URL", "/api/v1/incident_reporting")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_BASE_URL")
}

func TestLoadConfig_RejectsUnsupportedScheme(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIA_BASE_URL", "ftp://files.example.com/mediafiles")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEDIA_BASE_URL")
}
