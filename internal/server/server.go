// Package server assembles the GraphDB MCP server: connectivity check, tool
// registration and transport selection.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spendcast/graphdb-mcp-finance/internal/config"
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
)

const (
	serverName    = "graphdb-mcp-finance"
	serverVersion = "1.0.0"
)

// GraphDBMCPServer exposes the spendcast knowledge graph as MCP tools.
type GraphDBMCPServer struct {
	MCPServer *server.MCPServer
	config    *config.Config
	dbService graphdb.Service
}

// New verifies connectivity to the store, builds the MCP server and registers
// the tool set. A store that does not answer is an operational fault and
// fails startup.
func New(ctx context.Context, cfg *config.Config, dbService graphdb.Service) (*GraphDBMCPServer, error) {
	if err := dbService.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("startup connectivity check failed: %w", err)
	}
	slog.Info("connected to GraphDB", "endpoint", dbService.Endpoint())

	s := &GraphDBMCPServer{
		MCPServer: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		config:    cfg,
		dbService: dbService,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return s, nil
}

// Serve blocks, serving MCP on the configured transport.
func (s *GraphDBMCPServer) Serve() error {
	switch s.config.Transport {
	case config.TransportHTTP:
		slog.Info("serving MCP over streamable HTTP", "addr", s.config.HTTPAddr)
		httpServer := server.NewStreamableHTTPServer(s.MCPServer)
		return httpServer.Start(s.config.HTTPAddr)
	default:
		slog.Info("serving MCP over stdio")
		return server.ServeStdio(s.MCPServer)
	}
}
