package dataflows

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a snapshot of a symbol's current trading state.
type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
}

// CompanyOverview carries a company's key fundamentals. Fields the upstream
// source cannot supply stay at their zero value.
type CompanyOverview struct {
	Name             string
	Sector           string
	Industry         string
	MarketCap        int64
	PERatio          float64
	ForwardPE        float64
	DividendYield    float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
}

// Bar is one daily OHLCV record as returned by the chart provider.
type Bar struct {
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// RecommendationRow is one period of analyst recommendation counts.
type RecommendationRow struct {
	Period     string
	StrongBuy  int
	Buy        int
	Hold       int
	Sell       int
	StrongSell int
}

// InsiderTransaction is one insider trade filing. Fields the upstream source
// does not report default to their zero value.
type InsiderTransaction struct {
	Date            string
	Insider         string
	Position        string
	TransactionType string
	Shares          int64
	Value           float64
	URL             string
	Text            string
	StartDate       string
	Ownership       string
}

// SearchHit is one resolved security from a symbol lookup.
type SearchHit struct {
	Symbol   string
	Name     string
	Type     string
	Exchange string
}
