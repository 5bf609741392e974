package indicators

// OBV computes on-balance volume, cumulative from the first bar. It has no
// warm-up window, so the output covers every input bar.
func OBV(closes, volumes []float64) []float64 {
	out := make([]float64, 0, len(closes))
	if len(closes) == 0 {
		return out
	}

	obv := volumes[0]
	out = append(out, obv)
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			obv += volumes[i]
		case closes[i] < closes[i-1]:
			obv -= volumes[i]
		}
		out = append(out, obv)
	}

	return out
}

// CMF computes the Chaikin money flow over the given window.
func CMF(highs, lows, closes, volumes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < period {
		return out
	}

	mfv := make([]float64, len(closes))
	for i := range closes {
		rng := highs[i] - lows[i]
		if rng == 0 {
			continue
		}
		mult := ((closes[i] - lows[i]) - (highs[i] - closes[i])) / rng
		mfv[i] = mult * volumes[i]
	}

	for i := period - 1; i < len(closes); i++ {
		sumMFV, sumVol := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			sumMFV += mfv[j]
			sumVol += volumes[j]
		}
		if sumVol == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, sumMFV/sumVol)
	}

	return out
}

// MFI computes the money flow index over typical prices.
func MFI(highs, lows, closes, volumes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	tp := typicalPrices(highs, lows, closes)
	for i := period; i < len(closes); i++ {
		pos, neg := 0.0, 0.0
		for j := i - period + 1; j <= i; j++ {
			flow := tp[j] * volumes[j]
			if tp[j] > tp[j-1] {
				pos += flow
			} else if tp[j] < tp[j-1] {
				neg += flow
			}
		}
		if neg == 0 {
			out = append(out, 100)
			continue
		}
		ratio := pos / neg
		out = append(out, 100-100/(1+ratio))
	}

	return out
}
