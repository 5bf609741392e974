package indicators

import "math"

// BollingerBands computes the upper, middle, and lower bands: an SMA with a
// standard-deviation envelope.
func BollingerBands(closes []float64, period int, mult float64) (upper, middle, lower []float64) {
	upper, middle, lower = []float64{}, []float64{}, []float64{}
	if period <= 0 || len(closes) < period {
		return upper, middle, lower
	}

	for i := period - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += closes[j]
		}
		sma := sum / float64(period)

		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			diff := closes[j] - sma
			variance += diff * diff
		}
		variance /= float64(period)
		stdDev := math.Sqrt(variance)

		middle = append(middle, sma)
		upper = append(upper, sma+mult*stdDev)
		lower = append(lower, sma-mult*stdDev)
	}

	return upper, middle, lower
}

// ATR computes the average true range with Wilder smoothing.
func ATR(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	trs := trueRanges(highs, lows, closes)

	atr := 0.0
	for i := 0; i < period; i++ {
		atr += trs[i]
	}
	atr /= float64(period)
	out = append(out, atr)

	for i := period; i < len(trs); i++ {
		atr = (atr*float64(period-1) + trs[i]) / float64(period)
		out = append(out, atr)
	}

	return out
}

// ADX computes the average directional index. The first value needs two full
// smoothing windows of history.
func ADX(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < 2*period+1 {
		return out
	}

	trs := trueRanges(highs, lows, closes)
	plusDM := make([]float64, len(trs))
	minusDM := make([]float64, len(trs))
	for i := 1; i < len(closes); i++ {
		up := highs[i] - highs[i-1]
		down := lows[i-1] - lows[i]
		if up > down && up > 0 {
			plusDM[i-1] = up
		}
		if down > up && down > 0 {
			minusDM[i-1] = down
		}
	}

	str, sPlus, sMinus := 0.0, 0.0, 0.0
	for i := 0; i < period; i++ {
		str += trs[i]
		sPlus += plusDM[i]
		sMinus += minusDM[i]
	}

	dxs := make([]float64, 0)
	dxs = append(dxs, dx(str, sPlus, sMinus))
	for i := period; i < len(trs); i++ {
		str = str - str/float64(period) + trs[i]
		sPlus = sPlus - sPlus/float64(period) + plusDM[i]
		sMinus = sMinus - sMinus/float64(period) + minusDM[i]
		dxs = append(dxs, dx(str, sPlus, sMinus))
	}

	if len(dxs) < period {
		return out
	}

	adx := 0.0
	for i := 0; i < period; i++ {
		adx += dxs[i]
	}
	adx /= float64(period)
	out = append(out, adx)

	for i := period; i < len(dxs); i++ {
		adx = (adx*float64(period-1) + dxs[i]) / float64(period)
		out = append(out, adx)
	}

	return out
}

func dx(str, sPlus, sMinus float64) float64 {
	if str == 0 {
		return 0
	}
	pdi := 100 * sPlus / str
	mdi := 100 * sMinus / str
	if pdi+mdi == 0 {
		return 0
	}
	return 100 * math.Abs(pdi-mdi) / (pdi + mdi)
}
