package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rising returns n strictly increasing closes.
func rising(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// constant returns n copies of v.
func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestSMAKnownValues(t *testing.T) {
	got := SMA([]float64{1, 2, 3, 4, 5}, 3)
	assert.Equal(t, []float64{2, 3, 4}, got)
}

func TestSMADropsWarmup(t *testing.T) {
	got := SMA(rising(30), 20)
	assert.Len(t, got, 11)
}

func TestSMAInsufficientData(t *testing.T) {
	got := SMA(rising(5), 20)
	require.NotNil(t, got, "must serialize as an empty array, not null")
	assert.Empty(t, got)
}

func TestEMASeededWithSMA(t *testing.T) {
	got := EMA([]float64{2, 4, 6, 8}, 3)
	require.Len(t, got, 2)
	assert.InDelta(t, 4.0, got[0], 1e-9)
	// next: 8*0.5 + 4*0.5
	assert.InDelta(t, 6.0, got[1], 1e-9)
}

func TestWMAKnownValues(t *testing.T) {
	got := WMA([]float64{1, 2, 3}, 2)
	require.Len(t, got, 2)
	assert.InDelta(t, 5.0/3.0, got[0], 1e-9)
	assert.InDelta(t, 8.0/3.0, got[1], 1e-9)
}

func TestHMAOutputLength(t *testing.T) {
	// WMA(20) leaves 11 values, the sqrt(20)=4 final WMA leaves 8.
	got := HMA(rising(30), 20)
	assert.Len(t, got, 8)
}

func TestRSIAllGains(t *testing.T) {
	got := RSI(rising(20), 14)
	require.Len(t, got, 6)
	for _, v := range got {
		assert.InDelta(t, 100.0, v, 1e-9)
	}
}

func TestRSIInsufficientData(t *testing.T) {
	assert.Empty(t, RSI(rising(14), 14))
}

func TestStochOutputLengths(t *testing.T) {
	closes := rising(20)
	highs := make([]float64, 20)
	lows := make([]float64, 20)
	for i := range closes {
		highs[i] = closes[i] + 1
		lows[i] = closes[i] - 1
	}

	k, d := Stoch(highs, lows, closes, 14, 3, 3)
	assert.Len(t, k, 5)
	assert.Len(t, d, 3)
}

func TestStochShortInput(t *testing.T) {
	k, d := Stoch(rising(5), rising(5), rising(5), 14, 3, 3)
	require.NotNil(t, k)
	require.NotNil(t, d)
	assert.Empty(t, k)
	assert.Empty(t, d)
}

func TestMACDOutputLengths(t *testing.T) {
	line, sig, hist := MACD(rising(40), 12, 26, 9)
	assert.Len(t, line, 15)
	assert.Len(t, sig, 7)
	assert.Len(t, hist, 7)
}

func TestMACDShortInputYieldsEmptySequences(t *testing.T) {
	line, sig, hist := MACD(rising(10), 12, 26, 9)
	require.NotNil(t, line)
	require.NotNil(t, sig)
	require.NotNil(t, hist)
	assert.Empty(t, line)
	assert.Empty(t, sig)
	assert.Empty(t, hist)
}

func TestROCKnownValues(t *testing.T) {
	got := ROC([]float64{10, 11, 12, 13}, 2)
	require.Len(t, got, 2)
	assert.InDelta(t, 20.0, got[0], 1e-9)
	assert.InDelta(t, 100*2.0/11.0, got[1], 1e-9)
}

func TestWillRBounds(t *testing.T) {
	closes := rising(20)
	// Close sits at the window high, so %R is 0.
	got := WillR(closes, closes, closes, 14)
	require.Len(t, got, 7)
	for _, v := range got {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func TestCCIConstantSeriesIsZero(t *testing.T) {
	c := constant(25, 50)
	got := CCI(c, c, c, 20)
	require.Len(t, got, 6)
	for _, v := range got {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func TestBollingerConstantSeriesCollapses(t *testing.T) {
	c := constant(25, 50)
	upper, middle, lower := BollingerBands(c, 20, 2.0)
	require.Len(t, middle, 6)
	for i := range middle {
		assert.InDelta(t, 50.0, middle[i], 1e-9)
		assert.InDelta(t, 50.0, upper[i], 1e-9)
		assert.InDelta(t, 50.0, lower[i], 1e-9)
	}
}

func TestATRConstantRange(t *testing.T) {
	n := 30
	closes := constant(n, 100)
	highs := constant(n, 101)
	lows := constant(n, 99)

	got := ATR(highs, lows, closes, 14)
	require.Len(t, got, n-14)
	for _, v := range got {
		assert.InDelta(t, 2.0, v, 1e-9)
	}
}

func TestADXOutputLength(t *testing.T) {
	n := 40
	closes := rising(n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	for i := range closes {
		highs[i] = closes[i] + 1
		lows[i] = closes[i] - 1
	}

	got := ADX(highs, lows, closes, 14)
	assert.Len(t, got, n-2*14+1)
}

func TestOBVKnownValues(t *testing.T) {
	got := OBV([]float64{1, 2, 1, 1}, []float64{10, 5, 3, 2})
	assert.Equal(t, []float64{10, 15, 12, 12}, got)
}

func TestCMFBounds(t *testing.T) {
	n := 25
	closes := constant(n, 101)
	highs := constant(n, 101)
	lows := constant(n, 99)
	volumes := constant(n, 1000)

	// Close pinned to the high gives the maximum multiplier of +1.
	got := CMF(highs, lows, closes, volumes, 20)
	require.Len(t, got, 6)
	for _, v := range got {
		assert.InDelta(t, 1.0, v, 1e-9)
	}
}

func TestMFIAllRising(t *testing.T) {
	n := 20
	closes := rising(n)
	got := MFI(closes, closes, closes, constant(n, 1000), 14)
	require.Len(t, got, 6)
	for _, v := range got {
		assert.InDelta(t, 100.0, v, 1e-9)
	}
}

func TestSuperTrendOutputLength(t *testing.T) {
	n := 30
	closes := rising(n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	for i := range closes {
		highs[i] = closes[i] + 1
		lows[i] = closes[i] - 1
	}

	got := SuperTrend(highs, lows, closes, 7, 3.0)
	assert.Len(t, got, n-7)
}

func TestEmptyInputs(t *testing.T) {
	assert.Empty(t, SMA(nil, 20))
	assert.Empty(t, EMA(nil, 20))
	assert.Empty(t, RSI(nil, 14))
	assert.Empty(t, OBV(nil, nil))
	assert.Empty(t, ATR(nil, nil, nil, 14))
	assert.Empty(t, SuperTrend(nil, nil, nil, 7, 3.0))
}
