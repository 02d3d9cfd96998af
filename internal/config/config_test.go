package config_test

import (
	"testing"
	"time"

	"github.com/spendcast/graphdb-mcp-finance/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GRAPHDB_URL", "http://localhost:7200/repositories/spendcast")
	t.Setenv("GRAPHDB_USER", "admin")
	t.Setenv("GRAPHDB_PASSWORD", "secret")
}

func TestLoadSuccess(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7200/repositories/spendcast", cfg.URL)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, config.DefaultQueryTimeout, cfg.QueryTimeout)
	assert.Equal(t, config.TransportStdio, cfg.Transport)
	assert.False(t, cfg.ReadOnly)
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{"missing url", "GRAPHDB_URL"},
		{"missing user", "GRAPHDB_USER"},
		{"missing password", "GRAPHDB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.missing, "")

			cfg, err := config.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoadOptionalOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GRAPHDB_TIMEOUT", "5")
	t.Setenv("GRAPHDB_READ_ONLY", "true")
	t.Setenv("MCP_TRANSPORT", "http")
	t.Setenv("MCP_HTTP_ADDR", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.QueryTimeout)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, config.TransportHTTP, cfg.Transport)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoadInvalidOptional(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric timeout", "GRAPHDB_TIMEOUT", "soon"},
		{"negative timeout", "GRAPHDB_TIMEOUT", "-1"},
		{"non-boolean read-only", "GRAPHDB_READ_ONLY", "maybe"},
		{"unknown transport", "MCP_TRANSPORT", "carrier-pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
