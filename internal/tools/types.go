package tools

import (
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	GraphDB graphdb.Service
}
