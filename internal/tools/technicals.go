package tools

import (
	"context"
	"fmt"

	"github.com/stocklens/stocklens/internal/dataflows"
	"github.com/stocklens/stocklens/internal/indicators"
)

// defaultIndicators is the set computed when the caller does not select any.
var defaultIndicators = []string{
	"sma", "ema", "wma", "hma", "rsi", "stoch", "macd", "bbands",
	"adx", "atr", "cci", "roc", "willr", "obv", "cmf", "mfi", "supertrend",
}

// TechnicalIndicators implements get_technical_indicators. Unrecognized
// indicator names are silently ignored. Each selected indicator is computed
// independently; the transforms are total, so one indicator can never abort
// the call. The only failure path is a missing history.
func (s *Service) TechnicalIndicators(ctx context.Context, symbol, period string, names []string) (IndicatorsResponse, error) {
	resolved, err := s.resolveInput(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if period == "" {
		period = dataflows.DefaultPeriod
	}

	now := s.now()
	bars, err := s.market.History(ctx, resolved, dataflows.PeriodStart(period, now), now)
	if err != nil {
		s.log.Error().Err(err).Str("op", "get_technical_indicators").Str("symbol", resolved).Msg("history fetch failed")
		return nil, fmt.Errorf("No historical data for %s", resolved)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("No historical data for %s", resolved)
	}

	if len(names) == 0 {
		names = defaultIndicators
	}
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		selected[name] = true
	}

	closes := make([]float64, len(bars))
	highs := make([]float64, len(bars))
	lows := make([]float64, len(bars))
	volumes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close.InexactFloat64()
		highs[i] = b.High.InexactFloat64()
		lows[i] = b.Low.InexactFloat64()
		volumes[i] = float64(b.Volume)
	}

	result := make(IndicatorsResponse)

	// Moving averages
	if selected["sma"] {
		result["sma_20"] = indicators.SMA(closes, 20)
	}
	if selected["ema"] {
		result["ema_20"] = indicators.EMA(closes, 20)
	}
	if selected["wma"] {
		result["wma_20"] = indicators.WMA(closes, 20)
	}
	if selected["hma"] {
		result["hma_20"] = indicators.HMA(closes, 20)
	}

	// Momentum
	if selected["rsi"] {
		result["rsi_14"] = indicators.RSI(closes, 14)
	}
	if selected["stoch"] {
		k, d := indicators.Stoch(highs, lows, closes, 14, 3, 3)
		result["stoch_k"] = k
		result["stoch_d"] = d
	}
	if selected["macd"] {
		line, sig, hist := indicators.MACD(closes, 12, 26, 9)
		result["macd"] = line
		result["macd_signal"] = sig
		result["macd_hist"] = hist
	}
	if selected["roc"] {
		result["roc_10"] = indicators.ROC(closes, 10)
	}
	if selected["willr"] {
		result["willr_14"] = indicators.WillR(highs, lows, closes, 14)
	}

	// Volatility
	if selected["bbands"] {
		upper, middle, lower := indicators.BollingerBands(closes, 20, 2.0)
		result["bbands_upper"] = upper
		result["bbands_middle"] = middle
		result["bbands_lower"] = lower
	}
	if selected["atr"] {
		result["atr_14"] = indicators.ATR(highs, lows, closes, 14)
	}
	if selected["adx"] {
		result["adx_14"] = indicators.ADX(highs, lows, closes, 14)
	}

	// Volume
	if selected["obv"] {
		result["obv"] = indicators.OBV(closes, volumes)
	}
	if selected["cmf"] {
		result["cmf_20"] = indicators.CMF(highs, lows, closes, volumes, 20)
	}
	if selected["mfi"] {
		result["mfi_14"] = indicators.MFI(highs, lows, closes, volumes, 14)
	}

	// Trend
	if selected["supertrend"] {
		result["supertrend"] = indicators.SuperTrend(highs, lows, closes, 7, 3.0)
	}
	if selected["cci"] {
		result["cci_20"] = indicators.CCI(highs, lows, closes, 20)
	}

	return result, nil
}
