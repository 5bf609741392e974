package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info().Str("symbol", "AAPL").Msg("quote fetched")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "quote fetched", entry["message"])
	assert.Equal(t, "AAPL", entry["symbol"])
	assert.Contains(t, entry, "time")
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json", Output: &buf})

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "shout", Format: "json", Output: &buf})

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestConsoleFormatIsHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "console", Output: &buf})

	log.Info().Msg("starting server")

	out := buf.String()
	assert.Contains(t, out, "starting server")
	assert.NotContains(t, out, `"message"`)
}
