package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/stocklens/stocklens/config"
	"github.com/stocklens/stocklens/internal/dataflows"
	"github.com/stocklens/stocklens/internal/tools"
	"github.com/stocklens/stocklens/pkg/logger"
)

const version = "0.1.0"

func main() {
	cfg := config.DefaultConfig()

	// Logs go to stderr so stdout stays clean for MCP stdio framing.
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	yahoo := dataflows.NewYahooClient(log)
	finnhub := dataflows.NewFinnhubClient(cfg, log)
	resolver := dataflows.NewResolver(yahoo, log)
	service := tools.NewService(yahoo, finnhub, resolver, log)

	mcpServer := server.NewMCPServer(
		"stocklens",
		version,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createStockQuoteTool(), handleStockQuote(service))
	mcpServer.AddTool(createCompanyOverviewTool(), handleCompanyOverview(service))
	mcpServer.AddTool(createTimeSeriesDailyTool(), handleTimeSeriesDaily(service))
	mcpServer.AddTool(createSearchSymbolTool(), handleSearchSymbol(service))
	mcpServer.AddTool(createRecommendationsTool(), handleRecommendations(service))
	mcpServer.AddTool(createInsiderTransactionsTool(), handleInsiderTransactions(service))
	mcpServer.AddTool(createTechnicalIndicatorsTool(), handleTechnicalIndicators(service))

	log.Info().Str("version", version).Msg("starting stocklens MCP server")

	// Blocks on stdio until the client disconnects.
	if err := server.ServeStdio(mcpServer); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server failed: %v\n", err)
		os.Exit(1)
	}
}
