package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stocklens/stocklens/internal/tools"
)

// jsonResult serializes a tool payload as a JSON text content block. Data
// failures are carried inside the payload as {"error": ...}; handlers never
// return a transport-level fault for them.
func jsonResult(payload any) *mcp.CallToolResult {
	data, err := json.Marshal(payload)
	if err != nil {
		data, _ = json.Marshal(tools.ErrorResponse{Error: fmt.Sprintf("failed to encode response: %v", err)})
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(data)),
		},
	}
}

// requireSymbol reads the mandatory symbol argument, or returns an error
// payload when it is missing.
func requireSymbol(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	symbol, err := request.RequireString("symbol")
	if err != nil || symbol == "" {
		return "", jsonResult(tools.ErrorResponse{Error: "symbol parameter is required"})
	}
	return symbol, nil
}

// handleStockQuote implements the get_stock_quote tool
func handleStockQuote(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(tools.AsPayload(service.StockQuote(ctx, symbol))), nil
	}
}

// handleCompanyOverview implements the get_company_overview tool
func handleCompanyOverview(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(tools.AsPayload(service.CompanyOverview(ctx, symbol))), nil
	}
}

// handleTimeSeriesDaily implements the get_time_series_daily tool
func handleTimeSeriesDaily(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		outputsize := request.GetString("outputsize", "compact")
		return jsonResult(tools.AsPayload(service.TimeSeriesDaily(ctx, symbol, outputsize))), nil
	}
}

// handleSearchSymbol implements the search_symbol tool
func handleSearchSymbol(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		keywords, err := request.RequireString("keywords")
		if err != nil || keywords == "" {
			return jsonResult(tools.ErrorResponse{Error: "keywords parameter is required"}), nil
		}
		return jsonResult(tools.AsPayload(service.SearchSymbol(ctx, keywords))), nil
	}
}

// handleRecommendations implements the get_recommendations tool
func handleRecommendations(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(tools.AsPayload(service.Recommendations(ctx, symbol))), nil
	}
}

// handleInsiderTransactions implements the get_insider_transactions tool
func handleInsiderTransactions(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return jsonResult(tools.AsPayload(service.InsiderTransactions(ctx, symbol))), nil
	}
}

// handleTechnicalIndicators implements the get_technical_indicators tool
func handleTechnicalIndicators(service *tools.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		period := request.GetString("period", "3mo")
		names := request.GetStringSlice("indicators", nil)
		return jsonResult(tools.AsPayload(service.TechnicalIndicators(ctx, symbol, period, names))), nil
	}
}
