// Package indicators computes technical indicators over OHLCV series.
//
// Every transform is a total function: it returns an ordered sequence of
// defined values with the leading warm-up window dropped, and an empty
// sequence when the input is too short. Sequences are always non-nil so
// they serialize as JSON arrays.
package indicators

import "math"

// trueRanges returns the true range series, one value per bar starting from
// the second bar.
func trueRanges(highs, lows, closes []float64) []float64 {
	trs := make([]float64, 0)
	for i := 1; i < len(closes); i++ {
		tr := math.Max(highs[i]-lows[i],
			math.Max(math.Abs(highs[i]-closes[i-1]), math.Abs(lows[i]-closes[i-1])))
		trs = append(trs, tr)
	}
	return trs
}

// typicalPrices returns (high+low+close)/3 per bar.
func typicalPrices(highs, lows, closes []float64) []float64 {
	tp := make([]float64, len(closes))
	for i := range closes {
		tp[i] = (highs[i] + lows[i] + closes[i]) / 3
	}
	return tp
}
