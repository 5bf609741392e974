package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process configuration for the stocklens MCP server.
type Config struct {
	// Finnhub API configuration
	FinnhubAPIKey  string `json:"finnhub_api_key"`
	FinnhubBaseURL string `json:"finnhub_base_url"`

	// HTTP client timeout for provider requests
	HTTPTimeout time.Duration `json:"http_timeout"`

	// Logging
	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// DefaultConfig returns the default configuration, overridden by .env and
// process environment variables.
func DefaultConfig() *Config {
	cfg := &Config{
		FinnhubBaseURL: "https://finnhub.io/api/v1",
		HTTPTimeout:    10 * time.Second,
		LogLevel:       "info",
		LogFormat:      "console",
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("FINNHUB_API_KEY"); val != "" {
		c.FinnhubAPIKey = val
	}
	if val := os.Getenv("FINNHUB_BASE_URL"); val != "" {
		c.FinnhubBaseURL = val
	}

	if val := os.Getenv("STOCKLENS_HTTP_TIMEOUT"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	if val := os.Getenv("STOCKLENS_LOG_LEVEL"); val != "" {
		c.LogLevel = val
	}
	if val := os.Getenv("STOCKLENS_LOG_FORMAT"); val != "" {
		c.LogFormat = val
	}
}
