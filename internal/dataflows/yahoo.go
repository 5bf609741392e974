package dataflows

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"github.com/rs/zerolog"
)

// YahooClient serves quotes, fundamentals, daily history, and name lookups
// from Yahoo Finance. It also acts as the resolver's QuoteProber.
type YahooClient struct {
	log zerolog.Logger
}

// NewYahooClient creates a new Yahoo Finance client.
func NewYahooClient(log zerolog.Logger) *YahooClient {
	return &YahooClient{
		log: log.With().Str("provider", "yahoo").Logger(),
	}
}

// Quote gets the current quote for a symbol.
func (y *YahooClient) Quote(ctx context.Context, symbol string) (*Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}

	return &Quote{
		Symbol:        symbol,
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		Volume:        int64(q.RegularMarketVolume),
	}, nil
}

// HasLivePrice reports whether the symbol currently quotes a regular market
// price. A provider answer without a price is (false, nil); a failed probe
// is an error.
func (y *YahooClient) HasLivePrice(ctx context.Context, symbol string) (bool, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		// quote.Get reports an unknown symbol as an error rather than an
		// empty result; that still counts as the provider answering no.
		if isNoListing(err) {
			return false, nil
		}
		return false, fmt.Errorf("probe failed for %s: %w", symbol, err)
	}
	return q != nil && q.RegularMarketPrice > 0, nil
}

// isNoListing matches quote.Get's not-found message. finance-go wraps its
// errors in plain strings, so the message text is the only signal.
func isNoListing(err error) bool {
	return strings.Contains(err.Error(), "Can't find quote for symbol")
}

// Overview gets company fundamentals for a symbol. Yahoo's quote surface
// carries no sector/industry classification, so those fields stay empty.
func (y *YahooClient) Overview(ctx context.Context, symbol string) (*CompanyOverview, error) {
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get fundamentals for %s: %w", symbol, err)
	}
	if eq == nil {
		return nil, fmt.Errorf("no fundamentals for %s", symbol)
	}

	return &CompanyOverview{
		Name:             eq.LongName,
		MarketCap:        eq.MarketCap,
		PERatio:          eq.TrailingPE,
		ForwardPE:        eq.ForwardPE,
		DividendYield:    eq.TrailingAnnualDividendYield,
		FiftyTwoWeekHigh: eq.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  eq.FiftyTwoWeekLow,
	}, nil
}

// History gets daily OHLCV bars over [start, end], oldest first as returned
// by the provider.
func (y *YahooClient) History(ctx context.Context, symbol string, start, end time.Time) ([]Bar, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)

	bars := make([]Bar, 0)
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, Bar{
			Date:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get history for %s: %w", symbol, err)
	}

	return bars, nil
}

// Lookup resolves a candidate symbol to its listed security. A nil hit with
// a nil error means the provider answered but the candidate names no
// company.
func (y *YahooClient) Lookup(ctx context.Context, symbol string) (*SearchHit, error) {
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("lookup failed for %s: %w", symbol, err)
	}
	if eq == nil || eq.LongName == "" {
		return nil, nil
	}

	return &SearchHit{
		Symbol:   symbol,
		Name:     eq.LongName,
		Type:     string(eq.QuoteType),
		Exchange: eq.FullExchangeName,
	}, nil
}
