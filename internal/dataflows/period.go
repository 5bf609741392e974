package dataflows

import "time"

// DefaultPeriod is the lookback window used when a caller does not supply
// one, and the window for "compact" output size.
const DefaultPeriod = "3mo"

// PeriodStart maps a lookback period string ("1mo", "3mo", "1y", "max", ...)
// to the start of its window relative to now. Unrecognized strings fall back
// to the default three-month window.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "1d":
		return now.AddDate(0, 0, -1)
	case "5d":
		return now.AddDate(0, 0, -5)
	case "1mo":
		return now.AddDate(0, -1, 0)
	case "3mo":
		return now.AddDate(0, -3, 0)
	case "6mo":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "2y":
		return now.AddDate(-2, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "10y":
		return now.AddDate(-10, 0, 0)
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case "max":
		return time.Unix(0, 0)
	default:
		return now.AddDate(0, -3, 0)
	}
}
