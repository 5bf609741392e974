package dataflows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodStartWindows(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, -1, 0), PeriodStart("1mo", now))
	assert.Equal(t, now.AddDate(0, -3, 0), PeriodStart("3mo", now))
	assert.Equal(t, now.AddDate(-1, 0, 0), PeriodStart("1y", now))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), PeriodStart("ytd", now))
	assert.Equal(t, time.Unix(0, 0), PeriodStart("max", now))
}

func TestPeriodStartUnknownFallsBackToDefault(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, PeriodStart(DefaultPeriod, now), PeriodStart("fortnight", now))
}

func TestCompactWindowShorterThanFull(t *testing.T) {
	// compact maps to 3mo, full to max; the compact lookback must be
	// strictly shorter.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.True(t, PeriodStart("3mo", now).After(PeriodStart("max", now)))
}
