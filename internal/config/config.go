// Package config loads the server configuration from the process environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultQueryTimeout bounds a single SPARQL round trip to GraphDB.
	DefaultQueryTimeout = 30 * time.Second

	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP = "http"
)

// Config holds every setting the server needs. It is loaded once at startup
// and handed to the components that need it; nothing re-reads the environment
// after Load returns.
type Config struct {
	// URL is the GraphDB SPARQL endpoint (GRAPHDB_URL). Required.
	URL string
	// Username for GraphDB basic authentication (GRAPHDB_USER). Required.
	Username string
	// Password for GraphDB basic authentication (GRAPHDB_PASSWORD). Required.
	Password string

	// QueryTimeout is the fixed per-query HTTP timeout (GRAPHDB_TIMEOUT, seconds).
	QueryTimeout time.Duration
	// ReadOnly restricts the tool set to read-only tools (GRAPHDB_READ_ONLY).
	ReadOnly bool
	// Transport selects the MCP transport, "stdio" or "http" (MCP_TRANSPORT).
	Transport string
	// HTTPAddr is the listen address when Transport is "http" (MCP_HTTP_ADDR).
	HTTPAddr string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honoured for local development; real environment
// variables always win. Load fails on the first missing required variable so
// that a misconfigured deployment never reaches the network.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	cfg := &Config{
		QueryTimeout: DefaultQueryTimeout,
		Transport:    TransportStdio,
		HTTPAddr:     ":8080",
	}

	var err error
	if cfg.URL, err = requireEnv("GRAPHDB_URL"); err != nil {
		return nil, err
	}
	if cfg.Username, err = requireEnv("GRAPHDB_USER"); err != nil {
		return nil, err
	}
	if cfg.Password, err = requireEnv("GRAPHDB_PASSWORD"); err != nil {
		return nil, err
	}

	if v := os.Getenv("GRAPHDB_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("GRAPHDB_TIMEOUT must be a positive number of seconds, got %q", v)
		}
		cfg.QueryTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("GRAPHDB_READ_ONLY"); v != "" {
		readOnly, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("GRAPHDB_READ_ONLY must be a boolean, got %q", v)
		}
		cfg.ReadOnly = readOnly
	}

	if v := os.Getenv("MCP_TRANSPORT"); v != "" {
		if v != TransportStdio && v != TransportHTTP {
			return nil, fmt.Errorf("MCP_TRANSPORT must be %q or %q, got %q", TransportStdio, TransportHTTP, v)
		}
		cfg.Transport = v
	}

	if v := os.Getenv("MCP_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}

	return cfg, nil
}

// requireEnv returns the value of a mandatory environment variable.
func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		slog.Error("required environment variable not set", "name", name)
		return "", fmt.Errorf("%s environment variable not set", name)
	}
	return value, nil
}
