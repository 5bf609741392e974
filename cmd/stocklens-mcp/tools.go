package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createStockQuoteTool returns the get_stock_quote tool definition
func createStockQuoteTool() mcp.Tool {
	return mcp.NewTool("get_stock_quote",
		mcp.WithDescription("Get real-time stock quote information: current price, change, and volume"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, MSFT, RELIANCE)"),
		),
	)
}

// createCompanyOverviewTool returns the get_company_overview tool definition
func createCompanyOverviewTool() mcp.Tool {
	return mcp.NewTool("get_company_overview",
		mcp.WithDescription("Get company information, financial ratios, and other key metrics"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, MSFT, RELIANCE)"),
		),
	)
}

// createTimeSeriesDailyTool returns the get_time_series_daily tool definition
func createTimeSeriesDailyTool() mcp.Tool {
	return mcp.NewTool("get_time_series_daily",
		mcp.WithDescription("Get daily OHLCV time series data for a stock"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, MSFT, RELIANCE)"),
		),
		mcp.WithString("outputsize",
			mcp.Description("Output size: 'compact' (last 3 months) or 'full' (maximum available history)"),
			mcp.Enum("compact", "full"),
		),
	)
}

// createSearchSymbolTool returns the search_symbol tool definition
func createSearchSymbolTool() mcp.Tool {
	return mcp.NewTool("search_symbol",
		mcp.WithDescription("Search for securities by ticker keywords; Indian exchange variants (.NS, .BO) are probed before global listings"),
		mcp.WithString("keywords",
			mcp.Required(),
			mcp.Description("Space-separated ticker keywords (e.g., 'apple TCS')"),
		),
	)
}

// createRecommendationsTool returns the get_recommendations tool definition
func createRecommendationsTool() mcp.Tool {
	return mcp.NewTool("get_recommendations",
		mcp.WithDescription("Get analyst recommendation counts (strongBuy/buy/hold/sell/strongSell) per period"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, MSFT, RELIANCE)"),
		),
	)
}

// createInsiderTransactionsTool returns the get_insider_transactions tool definition
func createInsiderTransactionsTool() mcp.Tool {
	return mcp.NewTool("get_insider_transactions",
		mcp.WithDescription("Get recent insider transactions for a company"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, MSFT, RELIANCE)"),
		),
	)
}

// createTechnicalIndicatorsTool returns the get_technical_indicators tool definition
func createTechnicalIndicatorsTool() mcp.Tool {
	return mcp.NewTool("get_technical_indicators",
		mcp.WithDescription("Compute technical indicators (SMA, EMA, RSI, MACD, Bollinger Bands, ...) over a stock's history"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, MSFT, RELIANCE)"),
		),
		mcp.WithString("period",
			mcp.Description("History window, e.g. 1mo, 3mo, 6mo, 1y, max (default: 3mo)"),
		),
		mcp.WithArray("indicators",
			mcp.WithStringItems(),
			mcp.Description("Indicators to compute (default: all). Recognized: sma, ema, wma, hma, rsi, stoch, macd, bbands, adx, atr, cci, roc, willr, obv, cmf, mfi, supertrend"),
		),
	)
}
