package dataflows

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/stocklens/stocklens/config"
)

// FinnhubClient serves analyst recommendation trends and insider
// transactions from the Finnhub REST API.
type FinnhubClient struct {
	client *resty.Client
	apiKey string
	log    zerolog.Logger
}

// NewFinnhubClient creates a new Finnhub client.
func NewFinnhubClient(cfg *config.Config, log zerolog.Logger) *FinnhubClient {
	client := resty.New()
	client.SetBaseURL(cfg.FinnhubBaseURL)
	client.SetTimeout(cfg.HTTPTimeout)

	return &FinnhubClient{
		client: client,
		apiKey: cfg.FinnhubAPIKey,
		log:    log.With().Str("provider", "finnhub").Logger(),
	}
}

type finnhubRecommendation struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

// Recommendations gets analyst recommendation counts per period. A symbol
// with no analyst coverage yields an empty slice.
func (fc *FinnhubClient) Recommendations(ctx context.Context, symbol string) ([]RecommendationRow, error) {
	if fc.apiKey == "" {
		return nil, fmt.Errorf("finnhub API key not configured")
	}

	resp, err := fc.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"token":  fc.apiKey,
		}).
		Get("/stock/recommendation")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations for %s: %w", symbol, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
	}

	var raw []finnhubRecommendation
	if err := json.Unmarshal(resp.Body(), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations response: %w", err)
	}

	rows := make([]RecommendationRow, 0, len(raw))
	for _, rec := range raw {
		rows = append(rows, RecommendationRow{
			Period:     rec.Period,
			StrongBuy:  rec.StrongBuy,
			Buy:        rec.Buy,
			Hold:       rec.Hold,
			Sell:       rec.Sell,
			StrongSell: rec.StrongSell,
		})
	}

	return rows, nil
}

// InsiderTransactions gets insider trade filings. Finnhub rows are loosely
// shaped, so decoding goes through FieldMap with per-field defaults; fields
// Finnhub never reports (position, url, text, ownership) stay empty. A
// symbol with no filings yields an empty slice.
func (fc *FinnhubClient) InsiderTransactions(ctx context.Context, symbol string) ([]InsiderTransaction, error) {
	if fc.apiKey == "" {
		return nil, fmt.Errorf("finnhub API key not configured")
	}

	resp, err := fc.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"token":  fc.apiKey,
		}).
		Get("/stock/insider-transactions")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch insider transactions for %s: %w", symbol, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
	}

	var payload struct {
		Data []FieldMap `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse insider transactions response: %w", err)
	}

	txs := make([]InsiderTransaction, 0, len(payload.Data))
	for _, row := range payload.Data {
		shares := row.Float("change")
		txs = append(txs, InsiderTransaction{
			Date:            row.String("transactionDate"),
			Insider:         row.String("name"),
			TransactionType: row.String("transactionCode"),
			Shares:          int64(shares),
			Value:           math.Abs(shares) * row.Float("transactionPrice"),
			StartDate:       row.String("filingDate"),
		})
	}

	return txs, nil
}
