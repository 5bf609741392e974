// Package tools implements the stock data tools: resolve the symbol, issue
// the provider call, and reshape the result into the tool's declared
// response schema. Provider failures are logged with the symbol and
// operation, then collapsed into the uniform error response; no call ever
// raises to the transport layer.
package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocklens/stocklens/internal/dataflows"
)

// MarketProvider supplies quotes, fundamentals, daily history, and symbol
// lookups.
type MarketProvider interface {
	Quote(ctx context.Context, symbol string) (*dataflows.Quote, error)
	Overview(ctx context.Context, symbol string) (*dataflows.CompanyOverview, error)
	History(ctx context.Context, symbol string, start, end time.Time) ([]dataflows.Bar, error)
	Lookup(ctx context.Context, symbol string) (*dataflows.SearchHit, error)
}

// AnalystProvider supplies analyst recommendation trends and insider
// transactions.
type AnalystProvider interface {
	Recommendations(ctx context.Context, symbol string) ([]dataflows.RecommendationRow, error)
	InsiderTransactions(ctx context.Context, symbol string) ([]dataflows.InsiderTransaction, error)
}

// SymbolResolver maps a bare ticker to its best-guess tradable form.
type SymbolResolver interface {
	Resolve(ctx context.Context, symbol string) string
}

// Service implements the seven stock data tools over the providers.
type Service struct {
	market   MarketProvider
	analyst  AnalystProvider
	resolver SymbolResolver
	log      zerolog.Logger
	now      func() time.Time
}

// NewService creates the tool service.
func NewService(market MarketProvider, analyst AnalystProvider, resolver SymbolResolver, log zerolog.Logger) *Service {
	return &Service{
		market:   market,
		analyst:  analyst,
		resolver: resolver,
		log:      log.With().Str("component", "tools").Logger(),
		now:      time.Now,
	}
}

// resolveInput normalizes and resolves a caller-supplied symbol. All
// provider calls within one tool invocation use the resolved form.
func (s *Service) resolveInput(ctx context.Context, symbol string) (string, error) {
	if err := dataflows.ValidateSymbol(symbol); err != nil {
		return "", err
	}
	return s.resolver.Resolve(ctx, dataflows.NormalizeSymbol(symbol)), nil
}

// StockQuote implements get_stock_quote.
func (s *Service) StockQuote(ctx context.Context, symbol string) (*QuoteResponse, error) {
	resolved, err := s.resolveInput(ctx, symbol)
	if err != nil {
		return nil, err
	}

	q, err := s.market.Quote(ctx, resolved)
	if err != nil {
		s.log.Error().Err(err).Str("op", "get_stock_quote").Str("symbol", resolved).Msg("quote fetch failed")
		return nil, fmt.Errorf("Failed to fetch quote for %s", resolved)
	}

	return &QuoteResponse{
		Symbol:        resolved,
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		Volume:        q.Volume,
		Timestamp:     s.now().Format(time.RFC3339),
	}, nil
}

// CompanyOverview implements get_company_overview.
func (s *Service) CompanyOverview(ctx context.Context, symbol string) (*OverviewResponse, error) {
	resolved, err := s.resolveInput(ctx, symbol)
	if err != nil {
		return nil, err
	}

	ov, err := s.market.Overview(ctx, resolved)
	if err != nil {
		s.log.Error().Err(err).Str("op", "get_company_overview").Str("symbol", resolved).Msg("overview fetch failed")
		return nil, fmt.Errorf("Failed to fetch company overview for %s", resolved)
	}

	return &OverviewResponse{
		Name:          ov.Name,
		Sector:        ov.Sector,
		Industry:      ov.Industry,
		MarketCap:     ov.MarketCap,
		PERatio:       ov.PERatio,
		ForwardPE:     ov.ForwardPE,
		DividendYield: ov.DividendYield,
		WeekHigh52:    ov.FiftyTwoWeekHigh,
		WeekLow52:     ov.FiftyTwoWeekLow,
	}, nil
}

// TimeSeriesDaily implements get_time_series_daily. outputsize "compact"
// covers the last three months; "full" covers the maximum available
// history.
func (s *Service) TimeSeriesDaily(ctx context.Context, symbol, outputsize string) (*TimeSeriesResponse, error) {
	resolved, err := s.resolveInput(ctx, symbol)
	if err != nil {
		return nil, err
	}

	period := "max"
	if outputsize == "compact" {
		period = dataflows.DefaultPeriod
	}

	now := s.now()
	bars, err := s.market.History(ctx, resolved, dataflows.PeriodStart(period, now), now)
	if err != nil {
		s.log.Error().Err(err).Str("op", "get_time_series_daily").Str("symbol", resolved).Msg("history fetch failed")
		return nil, fmt.Errorf("Failed to fetch time series for %s", resolved)
	}

	points := make([]SeriesPoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, SeriesPoint{
			Date:   b.Date.Format(time.RFC3339),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: b.Volume,
		})
	}

	return &TimeSeriesResponse{Symbol: resolved, TimeSeriesDaily: points}, nil
}

// SearchSymbol implements search_symbol. Each whitespace-separated keyword
// is probed through the regional suffix variants before falling back to the
// bare keyword; keywords that resolve nowhere are omitted from the results.
func (s *Service) SearchSymbol(ctx context.Context, keywords string) (*SearchResponse, error) {
	results := make([]SearchResult, 0)
	for _, kw := range strings.Fields(keywords) {
		if hit := s.lookupKeyword(ctx, dataflows.NormalizeSymbol(kw)); hit != nil {
			results = append(results, *hit)
		}
	}
	return &SearchResponse{Results: results}, nil
}

func (s *Service) lookupKeyword(ctx context.Context, keyword string) *SearchResult {
	candidates := append(dataflows.SuffixCandidates(keyword), keyword)
	for _, candidate := range candidates {
		hit, err := s.market.Lookup(ctx, candidate)
		if err != nil {
			s.log.Debug().Err(err).Str("op", "search_symbol").
				Str("keyword", keyword).Str("candidate", candidate).Msg("lookup failed")
			continue
		}
		if hit != nil {
			return &SearchResult{
				Symbol:   hit.Symbol,
				Name:     hit.Name,
				Type:     hit.Type,
				Exchange: hit.Exchange,
			}
		}
	}
	return nil
}

// Recommendations implements get_recommendations.
func (s *Service) Recommendations(ctx context.Context, symbol string) (*RecommendationsResponse, error) {
	resolved, err := s.resolveInput(ctx, symbol)
	if err != nil {
		return nil, err
	}

	rows, err := s.analyst.Recommendations(ctx, resolved)
	if err != nil {
		s.log.Error().Err(err).Str("op", "get_recommendations").Str("symbol", resolved).Msg("recommendations fetch failed")
		return nil, fmt.Errorf("Failed to fetch recommendations for %s", resolved)
	}

	recs := make([]Recommendation, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, Recommendation{
			Period:     row.Period,
			StrongBuy:  row.StrongBuy,
			Buy:        row.Buy,
			Hold:       row.Hold,
			Sell:       row.Sell,
			StrongSell: row.StrongSell,
		})
	}

	return &RecommendationsResponse{Symbol: resolved, Recommendations: recs}, nil
}

// InsiderTransactions implements get_insider_transactions.
func (s *Service) InsiderTransactions(ctx context.Context, symbol string) (*InsiderTransactionsResponse, error) {
	resolved, err := s.resolveInput(ctx, symbol)
	if err != nil {
		return nil, err
	}

	rows, err := s.analyst.InsiderTransactions(ctx, resolved)
	if err != nil {
		s.log.Error().Err(err).Str("op", "get_insider_transactions").Str("symbol", resolved).Msg("insider transactions fetch failed")
		return nil, fmt.Errorf("Failed to fetch insider transactions for %s", resolved)
	}

	txs := make([]InsiderTransactionRecord, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, InsiderTransactionRecord{
			Date:            row.Date,
			Insider:         row.Insider,
			Position:        row.Position,
			TransactionType: row.TransactionType,
			Shares:          row.Shares,
			Value:           row.Value,
			URL:             row.URL,
			Text:            row.Text,
			StartDate:       row.StartDate,
			Ownership:       row.Ownership,
		})
	}

	return &InsiderTransactionsResponse{Symbol: resolved, Transactions: txs}, nil
}
