// Command graphdb-mcp serves the spendcast financial knowledge graph as a
// set of MCP tools over stdio or streamable HTTP.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spendcast/graphdb-mcp-finance/internal/config"
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
	"github.com/spendcast/graphdb-mcp-finance/internal/server"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/guidance"
	"github.com/spendcast/graphdb-mcp-finance/tools"
)

func main() {
	// Logs go to stderr; stdout belongs to the stdio transport.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	guidance.EmbeddedFS = tools.ConfigFiles

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	dbService := graphdb.NewService(cfg)

	srv, err := server.New(context.Background(), cfg, dbService)
	if err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	if err := srv.Serve(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
