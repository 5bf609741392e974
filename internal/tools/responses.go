package tools

// Response shapes for the seven tools. Every declared field is always
// present in the serialized form; fields the providers cannot supply carry
// their zero value.

// ErrorResponse is the uniform failure shape returned by every tool.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AsPayload converts an adapter result into its wire payload, collapsing a
// failure into the uniform error object. Adapters therefore never surface a
// fault to the transport layer.
func AsPayload(v any, err error) any {
	if err != nil {
		return ErrorResponse{Error: err.Error()}
	}
	return v
}

// QuoteResponse is the get_stock_quote success shape. Timestamp is the
// wall-clock time of the call, not the upstream quote time.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        int64   `json:"volume"`
	Timestamp     string  `json:"timestamp"`
}

// OverviewResponse is the get_company_overview success shape.
type OverviewResponse struct {
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	MarketCap     int64   `json:"marketCap"`
	PERatio       float64 `json:"peRatio"`
	ForwardPE     float64 `json:"forwardPE"`
	DividendYield float64 `json:"dividendYield"`
	WeekHigh52    float64 `json:"52WeekHigh"`
	WeekLow52     float64 `json:"52WeekLow"`
}

// SeriesPoint is one daily record in a time series response.
type SeriesPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// TimeSeriesResponse is the get_time_series_daily success shape, oldest
// point first.
type TimeSeriesResponse struct {
	Symbol          string        `json:"symbol"`
	TimeSeriesDaily []SeriesPoint `json:"timeSeriesDaily"`
}

// SearchResult is one resolved security in a search response.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Exchange string `json:"exchange"`
}

// SearchResponse is the search_symbol success shape, results in keyword
// input order.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// Recommendation is one period of analyst recommendation counts.
type Recommendation struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

// RecommendationsResponse is the get_recommendations success shape. A
// symbol with no analyst coverage carries an empty sequence, not an error.
type RecommendationsResponse struct {
	Symbol          string           `json:"symbol"`
	Recommendations []Recommendation `json:"recommendations"`
}

// InsiderTransactionRecord is one insider trade filing.
type InsiderTransactionRecord struct {
	Date            string  `json:"date"`
	Insider         string  `json:"insider"`
	Position        string  `json:"position"`
	TransactionType string  `json:"transactionType"`
	Shares          int64   `json:"shares"`
	Value           float64 `json:"value"`
	URL             string  `json:"url"`
	Text            string  `json:"text"`
	StartDate       string  `json:"startDate"`
	Ownership       string  `json:"ownership"`
}

// InsiderTransactionsResponse is the get_insider_transactions success
// shape. A symbol with no filings carries an empty sequence, not an error.
type InsiderTransactionsResponse struct {
	Symbol       string                     `json:"symbol"`
	Transactions []InsiderTransactionRecord `json:"transactions"`
}

// IndicatorsResponse is the get_technical_indicators success shape: output
// key to ordered value sequence, warm-up values dropped.
type IndicatorsResponse map[string][]float64
