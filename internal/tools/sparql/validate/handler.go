// Package validate exposes the advisory query validator as an MCP tool.
package validate

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spendcast/graphdb-mcp-finance/internal/sparql"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
)

// ValidationReport is the structured response of validate-sparql.
type ValidationReport struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// ValidateSPARQLHandler returns a handler function for the validate-sparql tool
func ValidateSPARQLHandler(_ *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateSPARQL(ctx, request)
	}
}

// handleValidateSPARQL runs the pure validator. A failed check is a normal
// result, not a tool error: validation is informational and never gates
// execution.
func handleValidateSPARQL(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args ValidateSPARQLInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Query == "" {
		errMessage := "query parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	valid, message := sparql.Validate(args.Query)
	slog.Info("validate-sparql tool called", "valid", valid)

	report, err := json.Marshal(ValidationReport{Valid: valid, Message: message})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(report)), nil
}
