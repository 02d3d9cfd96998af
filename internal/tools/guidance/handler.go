package guidance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
)

// NewGuidanceHandler creates the handler for one guidance tool. Guidance
// tools return curated query patterns as text; the agent runs the actual
// queries through execute-sparql.
func NewGuidanceHandler(config *ToolConfig, _ *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slog.Info("guidance tool called", "tool", config.Name, "category", config.Category)
		return mcp.NewToolResultText(buildEnrichedDescription(config)), nil
	}
}

// buildEnrichedDescription renders every semantic field of a guidance config
// into one markdown document for the agent.
func buildEnrichedDescription(config *ToolConfig) string {
	var sb strings.Builder

	sb.WriteString(config.Description)

	if config.Intent != "" {
		sb.WriteString("\n\n## Intent\n")
		sb.WriteString(config.Intent)
	}

	if ref := config.ReferenceSchema; ref != nil {
		sb.WriteString("\n\n## Reference Schema\n")
		if len(ref.Prefixes) > 0 {
			sb.WriteString("Required prefixes:\n```sparql\n")
			sb.WriteString(strings.Join(ref.Prefixes, "\n"))
			sb.WriteString("\n```\n")
		}
		if len(ref.Classes) > 0 {
			sb.WriteString(fmt.Sprintf("- Classes: %v\n", ref.Classes))
		}
		if len(ref.Properties) > 0 {
			sb.WriteString(fmt.Sprintf("- Properties: %v\n", ref.Properties))
		}
	}

	if len(config.Examples) > 0 {
		sb.WriteString("\n\n## Worked Examples\n")
		for _, example := range config.Examples {
			sb.WriteString(fmt.Sprintf("\n**Q: %s**\n```sparql\n%s\n```\n", example.Question, strings.TrimSpace(example.SPARQL)))
		}
	}

	if len(config.Parameters) > 0 {
		sb.WriteString("\n\n## Parameters\n")
		for _, param := range config.Parameters {
			line := fmt.Sprintf("- `%s` (%s)", param.Name, param.Type)
			if param.Description != "" {
				line += ": " + param.Description
			}
			if param.Default != nil {
				line += fmt.Sprintf(" (default: %v)", param.Default)
			}
			if param.Required {
				line += " [required]"
			}
			sb.WriteString(line + "\n")
		}
	}

	sb.WriteString("\n\nRun the chosen query with the execute-sparql tool, substituting any parameters first.")

	return sb.String()
}
