package indicators

import "math"

// RSI computes the relative strength index with Wilder smoothing.
func RSI(closes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss += -change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out = append(out, rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out = append(out, rsiValue(avgGain, avgLoss))
	}

	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs))
}

// Stoch computes the stochastic oscillator: %K smoothed over smoothK, %D as
// the dPeriod average of %K.
func Stoch(highs, lows, closes []float64, kPeriod, smoothK, dPeriod int) (k, d []float64) {
	raw := make([]float64, 0)
	if kPeriod <= 0 || len(closes) < kPeriod {
		return []float64{}, []float64{}
	}

	for i := kPeriod - 1; i < len(closes); i++ {
		hh, ll := math.Inf(-1), math.Inf(1)
		for j := i - kPeriod + 1; j <= i; j++ {
			hh = math.Max(hh, highs[j])
			ll = math.Min(ll, lows[j])
		}
		if hh == ll {
			raw = append(raw, 0)
			continue
		}
		raw = append(raw, 100*(closes[i]-ll)/(hh-ll))
	}

	k = SMA(raw, smoothK)
	d = SMA(k, dPeriod)
	return k, d
}

// MACD computes the MACD line, its signal line, and the histogram. The three
// sequences have different warm-up windows and so different lengths.
func MACD(closes []float64, fast, slow, signal int) (line, sig, hist []float64) {
	line, sig, hist = []float64{}, []float64{}, []float64{}
	if fast <= 0 || slow <= fast || len(closes) < slow {
		return line, sig, hist
	}

	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)
	offset := len(emaFast) - len(emaSlow)
	line = make([]float64, len(emaSlow))
	for i := range emaSlow {
		line[i] = emaFast[i+offset] - emaSlow[i]
	}

	sig = EMA(line, signal)
	if len(sig) > 0 {
		hOffset := len(line) - len(sig)
		hist = make([]float64, len(sig))
		for i := range sig {
			hist[i] = line[i+hOffset] - sig[i]
		}
	}

	return line, sig, hist
}

// ROC computes the rate of change as a percentage over the given lookback.
func ROC(closes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 {
		return out
	}

	for i := period; i < len(closes); i++ {
		prev := closes[i-period]
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, 100*(closes[i]-prev)/prev)
	}

	return out
}

// WillR computes Williams %R over the given window.
func WillR(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < period {
		return out
	}

	for i := period - 1; i < len(closes); i++ {
		hh, ll := math.Inf(-1), math.Inf(1)
		for j := i - period + 1; j <= i; j++ {
			hh = math.Max(hh, highs[j])
			ll = math.Min(ll, lows[j])
		}
		if hh == ll {
			out = append(out, 0)
			continue
		}
		out = append(out, -100*(hh-closes[i])/(hh-ll))
	}

	return out
}

// CCI computes the commodity channel index over typical prices.
func CCI(highs, lows, closes []float64, period int) []float64 {
	out := make([]float64, 0)
	if period <= 0 || len(closes) < period {
		return out
	}

	tp := typicalPrices(highs, lows, closes)
	for i := period - 1; i < len(tp); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += tp[j]
		}
		mean := sum / float64(period)

		dev := 0.0
		for j := i - period + 1; j <= i; j++ {
			dev += math.Abs(tp[j] - mean)
		}
		dev /= float64(period)

		if dev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (tp[i]-mean)/(0.015*dev))
	}

	return out
}
