package indicators

import "math"

// SMA computes the simple moving average over the given window.
func SMA(values []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(values) < period {
		return out
	}

	for i := period - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out = append(out, sum/float64(period))
	}

	return out
}

// EMA computes the exponential moving average, seeded with the simple
// average of the first window.
func EMA(values []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(values) < period {
		return out
	}

	multiplier := 2.0 / (float64(period) + 1.0)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	ema := sum / float64(period)
	out = append(out, ema)

	for i := period; i < len(values); i++ {
		ema = (values[i] * multiplier) + (ema * (1 - multiplier))
		out = append(out, ema)
	}

	return out
}

// WMA computes the linearly weighted moving average, most recent value
// weighted heaviest.
func WMA(values []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(values) < period {
		return out
	}

	denom := float64(period) * float64(period+1) / 2.0
	for i := period - 1; i < len(values); i++ {
		weighted := 0.0
		for j := 0; j < period; j++ {
			weighted += values[i-period+1+j] * float64(j+1)
		}
		out = append(out, weighted/denom)
	}

	return out
}

// HMA computes the Hull moving average:
// WMA(2*WMA(period/2) - WMA(period), sqrt(period)).
func HMA(values []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 1 || len(values) < period {
		return out
	}

	wmaHalf := WMA(values, period/2)
	wmaFull := WMA(values, period)
	if len(wmaFull) == 0 || len(wmaHalf) < len(wmaFull) {
		return out
	}

	offset := len(wmaHalf) - len(wmaFull)
	diff := make([]float64, len(wmaFull))
	for i := range wmaFull {
		diff[i] = 2*wmaHalf[i+offset] - wmaFull[i]
	}

	return WMA(diff, int(math.Sqrt(float64(period))))
}
