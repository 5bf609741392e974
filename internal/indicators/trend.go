package indicators

// SuperTrend computes the supertrend line: an ATR envelope around the bar
// midpoint that flips between its lower band (uptrend) and upper band
// (downtrend) as the close crosses the current band.
func SuperTrend(highs, lows, closes []float64, period int, mult float64) []float64 {
	out := make([]float64, 0)
	atr := ATR(highs, lows, closes, period)
	if len(atr) == 0 {
		return out
	}

	offset := len(closes) - len(atr)
	upper := make([]float64, len(atr))
	lower := make([]float64, len(atr))
	for i := range atr {
		idx := i + offset
		mid := (highs[idx] + lows[idx]) / 2
		basicUpper := mid + mult*atr[i]
		basicLower := mid - mult*atr[i]

		if i == 0 {
			upper[i] = basicUpper
			lower[i] = basicLower
			continue
		}

		// Bands only tighten unless the prior close broke through them.
		prevClose := closes[idx-1]
		if basicUpper < upper[i-1] || prevClose > upper[i-1] {
			upper[i] = basicUpper
		} else {
			upper[i] = upper[i-1]
		}
		if basicLower > lower[i-1] || prevClose < lower[i-1] {
			lower[i] = basicLower
		} else {
			lower[i] = lower[i-1]
		}
	}

	uptrend := true
	for i := range atr {
		idx := i + offset
		if uptrend {
			if closes[idx] < lower[i] {
				uptrend = false
			}
		} else {
			if closes[idx] > upper[i] {
				uptrend = true
			}
		}
		if uptrend {
			out = append(out, lower[i])
		} else {
			out = append(out, upper[i])
		}
	}

	return out
}
