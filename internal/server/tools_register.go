package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/guidance"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/schema"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/sparql/query"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/sparql/validate"
)

// registerTools registers all enabled MCP tools and adds them to the provided
// MCP server. When read-only mode is enabled (GRAPHDB_READ_ONLY or the
// Config.ReadOnly flag), only tools marked readonly are registered. Every
// current tool is read-only; the filter is the contract for future tools
// that would issue SPARQL UPDATE.
func (s *GraphDBMCPServer) registerTools() error {
	s.MCPServer.AddTools(s.getEnabledTools()...)
	return nil
}

type toolCategory int

const (
	sparqlCategory   toolCategory = 0
	schemaCategory   toolCategory = 1
	guidanceCategory toolCategory = 2
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *GraphDBMCPServer) getEnabledTools() []server.ServerTool {
	deps := &tools.ToolDependencies{
		GraphDB: s.dbService,
	}
	toolDefs := s.getAllToolsDefs(deps)

	if s.config != nil && s.config.ReadOnly {
		toolDefs = filterWriteTools(toolDefs)
	}

	enabledTools := make([]server.ServerTool, 0, len(toolDefs))
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *GraphDBMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		{
			category: sparqlCategory,
			definition: server.ServerTool{
				Tool:    query.ExecuteSPARQLSpec(),
				Handler: query.ExecuteSPARQLHandler(deps),
			},
			readonly: true,
		},
		{
			category: sparqlCategory,
			definition: server.ServerTool{
				Tool:    validate.ValidateSPARQLSpec(),
				Handler: validate.ValidateSPARQLHandler(deps),
			},
			readonly: true,
		},
		{
			category: schemaCategory,
			definition: server.ServerTool{
				Tool:    schema.GetSchemaSpec(),
				Handler: schema.GetSchemaHandler(deps),
			},
			readonly: true,
		},
	}

	toolDefs = append(toolDefs, s.loadGuidanceTools(deps)...)
	return toolDefs
}

// loadGuidanceTools loads tools from YAML configs in tools/config/
func (s *GraphDBMCPServer) loadGuidanceTools(deps *tools.ToolDependencies) []ToolDefinition {
	registry := guidance.NewToolRegistry("tools/config")

	if err := registry.LoadTools(); err != nil {
		slog.Error("failed to load guidance tools", "error", err)
		return []ToolDefinition{}
	}

	if registry.GetToolCount() == 0 {
		slog.Info("no guidance tools found in config directory")
		return []ToolDefinition{}
	}

	serverTools := registry.GetServerTools(deps)
	toolDefs := make([]ToolDefinition, 0, len(serverTools))
	for _, serverTool := range serverTools {
		toolDefs = append(toolDefs, ToolDefinition{
			category:   guidanceCategory,
			definition: serverTool,
			readonly:   true,
		})
	}
	return toolDefs
}
