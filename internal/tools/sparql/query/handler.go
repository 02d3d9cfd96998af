// Package query exposes the SPARQL executor as the execute-sparql MCP tool.
package query

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
)

// ExecuteSPARQLHandler returns a handler function for the execute-sparql tool
func ExecuteSPARQLHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExecuteSPARQL(ctx, request, deps)
	}
}

// handleExecuteSPARQL runs one query round trip against GraphDB. Per-query
// faults come back as tool error results, never as Go errors; the calling
// agent decides whether to rephrase, retry or report.
func handleExecuteSPARQL(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GraphDB == nil {
		errMessage := "GraphDB service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args ExecuteSPARQLInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Query == "" {
		errMessage := "query parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("execute-sparql tool called", "endpoint", deps.GraphDB.Endpoint())

	result := deps.GraphDB.ExecuteQuery(ctx, args.Query)
	if result.IsError() {
		return mcp.NewToolResultError(result.Err), nil
	}

	payload, err := result.JSON()
	if err != nil {
		slog.Error("failed to serialize query result", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
