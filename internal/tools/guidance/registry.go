// Package guidance loads YAML-defined guidance tools and registers them as
// MCP tools. Adding a new family of query patterns is a YAML file, not code.
package guidance

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
)

// ToolRegistry manages the loading and registration of guidance tools.
type ToolRegistry struct {
	configDir string
	configs   []*ToolConfig
}

// NewToolRegistry creates a new tool registry rooted at configDir.
func NewToolRegistry(configDir string) *ToolRegistry {
	return &ToolRegistry{
		configDir: configDir,
		configs:   make([]*ToolConfig, 0),
	}
}

// LoadTools loads all tool configurations from the config directory.
func (r *ToolRegistry) LoadTools() error {
	configs, err := WalkConfigDirectory(r.configDir)
	if err != nil {
		return fmt.Errorf("failed to load tools from config directory: %w", err)
	}

	r.configs = configs
	slog.Info("loaded guidance tools", "count", len(configs), "configDir", r.configDir)
	return nil
}

// GetToolCount returns the number of loaded tools.
func (r *ToolRegistry) GetToolCount() int {
	return len(r.configs)
}

// GetTools returns all loaded tool configurations.
func (r *ToolRegistry) GetTools() []*ToolConfig {
	return r.configs
}

// GetServerTools converts all loaded configs into MCP server tools.
func (r *ToolRegistry) GetServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	serverTools := make([]server.ServerTool, 0, len(r.configs))
	for _, config := range r.configs {
		serverTools = append(serverTools, r.buildServerTool(config, deps))
	}
	return serverTools
}

// buildServerTool creates an MCP server tool from a tool config. Guidance
// tools are read-only, idempotent and non-destructive by construction.
func (r *ToolRegistry) buildServerTool(config *ToolConfig, deps *tools.ToolDependencies) server.ServerTool {
	mcpTool := mcp.NewTool(config.Name,
		mcp.WithDescription(buildEnrichedDescription(config)),
		mcp.WithTitleAnnotation(config.Name),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)

	slog.Debug("built guidance tool", "name", config.Name, "category", config.Category)

	return server.ServerTool{
		Tool:    mcpTool,
		Handler: NewGuidanceHandler(config, deps),
	}
}

// GetToolsByCategory returns all tools in a specific category.
func (r *ToolRegistry) GetToolsByCategory(category string) []*ToolConfig {
	matched := make([]*ToolConfig, 0)
	for _, config := range r.configs {
		if config.Category == category {
			matched = append(matched, config)
		}
	}
	return matched
}
