package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://finnhub.io/api/v1", cfg.FinnhubBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FINNHUB_API_KEY", "test-key")
	t.Setenv("FINNHUB_BASE_URL", "http://localhost:9999/api/v1")
	t.Setenv("STOCKLENS_HTTP_TIMEOUT", "30")
	t.Setenv("STOCKLENS_LOG_LEVEL", "debug")
	t.Setenv("STOCKLENS_LOG_FORMAT", "json")

	cfg := DefaultConfig()

	assert.Equal(t, "test-key", cfg.FinnhubAPIKey)
	assert.Equal(t, "http://localhost:9999/api/v1", cfg.FinnhubBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestInvalidTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("STOCKLENS_HTTP_TIMEOUT", "not-a-number")

	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestNonPositiveTimeoutKeepsDefault(t *testing.T) {
	t.Setenv("STOCKLENS_HTTP_TIMEOUT", "0")

	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}
