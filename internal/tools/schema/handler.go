// Package schema implements the get-schema introspection tool.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
)

const (
	// classUsageQuery lists every class in use with its instance count.
	classUsageQuery = `SELECT ?class (COUNT(?s) AS ?count)
WHERE { ?s a ?class }
GROUP BY ?class
ORDER BY DESC(?count)`

	// propertyUsageQuery lists every predicate in use with its triple count.
	propertyUsageQuery = `SELECT ?property (COUNT(*) AS ?count)
WHERE { ?s ?property ?o }
GROUP BY ?property
ORDER BY DESC(?count)`
)

// sparqlResults is the subset of the SPARQL-results-JSON shape the
// introspection queries produce. Everywhere else the payload stays opaque;
// only this tool looks inside.
type sparqlResults struct {
	Results struct {
		Bindings []map[string]struct {
			Type  string `json:"type"`
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

type usageEntry struct {
	IRI   string
	Count string
}

// GetSchemaHandler returns a handler function for the get-schema tool
func GetSchemaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSchema(ctx, deps)
	}
}

func handleGetSchema(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.GraphDB == nil {
		errMessage := "GraphDB service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	slog.Info("retrieving schema from the store", "endpoint", deps.GraphDB.Endpoint())

	classes, err := runUsageQuery(ctx, deps.GraphDB, classUsageQuery, "class")
	if err != nil {
		slog.Error("failed to retrieve class usage", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(classes) == 0 {
		slog.Info("store is empty, no schema to return", "endpoint", deps.GraphDB.Endpoint())
		return mcp.NewToolResultText("The get-schema tool executed successfully; however, the store contains no typed instances, so no schema information was returned."), nil
	}

	properties, err := runUsageQuery(ctx, deps.GraphDB, propertyUsageQuery, "property")
	if err != nil {
		slog.Error("failed to retrieve property usage", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	markdown := formatSchemaAsMarkdown(classes, properties)
	slog.Info("returning schema", "classes", len(classes), "properties", len(properties))

	return mcp.NewToolResultText(markdown), nil
}

// runUsageQuery executes one introspection query and extracts (IRI, count)
// rows from the bindings.
func runUsageQuery(ctx context.Context, db graphdb.Service, query, variable string) ([]usageEntry, error) {
	result := db.ExecuteQuery(ctx, query)
	if result.IsError() {
		return nil, fmt.Errorf("schema introspection query failed: %s", result.Err)
	}

	var decoded sparqlResults
	if err := json.Unmarshal(result.Data, &decoded); err != nil {
		return nil, fmt.Errorf("unexpected schema result format: %w", err)
	}

	entries := make([]usageEntry, 0, len(decoded.Results.Bindings))
	for _, binding := range decoded.Results.Bindings {
		iri, ok := binding[variable]
		if !ok {
			continue
		}
		entry := usageEntry{IRI: iri.Value}
		if count, ok := binding["count"]; ok {
			entry.Count = count.Value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// formatSchemaAsMarkdown renders the usage tables with a short context header
// so the agent knows what kind of graph it is looking at.
func formatSchemaAsMarkdown(classes, properties []usageEntry) string {
	var md strings.Builder

	md.WriteString(`# Spendcast Financial Knowledge Graph Schema

This is an RDF triple store holding personal finance data: bank accounts,
payment cards, financial transactions, purchase receipts, products and
merchants. Schema terms live under the pfm: namespace
(https://static.rwpz.net/spendcast/schema#), data instances under ex:.

The tables below show the live contents of the repository.

---

`)

	md.WriteString("## 1. Classes in use\n\n")
	for _, c := range classes {
		md.WriteString(fmt.Sprintf("  - `%s` (%s instances)\n", c.IRI, c.Count))
	}

	if len(properties) > 0 {
		md.WriteString("\n## 2. Properties in use\n\n")
		for _, p := range properties {
			md.WriteString(fmt.Sprintf("  - `%s` (%s triples)\n", p.IRI, p.Count))
		}
	}

	return md.String()
}
