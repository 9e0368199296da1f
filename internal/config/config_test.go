package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_TEMPERATURE", "")
	t.Setenv("FAQ_CACHE_TTL_SECONDS", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "gpt-4-turbo", cfg.Completion.Model)
	assert.InDelta(t, 0.7, cfg.Completion.Temperature, 1e-9)
	assert.Empty(t, cfg.Completion.APIKey)
	assert.Equal(t, time.Duration(0), cfg.Completion.CacheTTL())
	assert.Equal(t, 30*time.Second, cfg.Completion.Timeout())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "5")
	t.Setenv("FAQ_CACHE_TTL_SECONDS", "600")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Completion.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Completion.Timeout())
	assert.Equal(t, 10*time.Minute, cfg.Completion.CacheTTL())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadRejectsBadTemperature(t *testing.T) {
	t.Setenv("OPENAI_TEMPERATURE", "warm")

	_, err := Load()
	assert.Error(t, err)
}
