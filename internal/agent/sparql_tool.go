package agent

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/sparql/query"
)

// SPARQLTool adapts the query executor to the agent Tool interface. It shares
// name, description and input schema with the MCP execute-sparql tool so both
// surfaces describe the same capability to their models.
type SPARQLTool struct {
	db graphdb.Service
}

// NewSPARQLTool wires the tool to an executor.
func NewSPARQLTool(db graphdb.Service) *SPARQLTool {
	return &SPARQLTool{db: db}
}

func (t *SPARQLTool) Name() string {
	return "execute-sparql"
}

func (t *SPARQLTool) Description() string {
	return query.ExecuteSPARQLSpec().Description
}

func (t *SPARQLTool) InputSchema() json.RawMessage {
	// The tool definition marshals its schema under "inputSchema" regardless
	// of how it was constructed, so pull it from there.
	spec, err := json.Marshal(query.ExecuteSPARQLSpec())
	if err != nil {
		panic(err)
	}
	var tool struct {
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal(spec, &tool); err != nil {
		panic(err)
	}
	return tool.InputSchema
}

// Call executes one SPARQL query. Query failures are soft: they come back as
// the {"error": ...} payload so the model can read and react to them.
func (t *SPARQLTool) Call(ctx context.Context, input json.RawMessage) (string, error) {
	var args query.ExecuteSPARQLInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", err
	}
	if args.Query == "" {
		return "", errors.New("query parameter is required")
	}

	slog.Info("SPARQL tool, got query", "bytes", len(args.Query))

	result := t.db.ExecuteQuery(ctx, args.Query)
	payload, err := result.JSON()
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
