// Package graphdb executes SPARQL queries against a GraphDB repository over
// the SPARQL 1.1 protocol: one authenticated HTTP POST per query, results in
// the standard application/sparql-results+json shape.
package graphdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spendcast/graphdb-mcp-finance/internal/config"
)

const (
	contentTypeForm   = "application/x-www-form-urlencoded"
	acceptSPARQLJSON  = "application/sparql-results+json"
	connectivityQuery = "ASK { }"
)

// service is the HTTP-backed Service implementation. The http.Client is
// shared across calls and safe for concurrent use; each call is otherwise
// independent, with no retries and no cached state.
type service struct {
	endpoint string
	username string
	password string
	client   *http.Client
}

// NewService builds a Service from the loaded configuration. The per-query
// timeout is fixed at construction; callers cannot override it per call.
func NewService(cfg *config.Config) Service {
	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = config.DefaultQueryTimeout
	}
	return &service{
		endpoint: cfg.URL,
		username: cfg.Username,
		password: cfg.Password,
		client:   &http.Client{Timeout: timeout},
	}
}

func (s *service) Endpoint() string {
	return s.endpoint
}

// ExecuteQuery performs one SPARQL round trip. Every per-query fault is
// mapped into the Result's error arm; the underlying transport error never
// crosses this boundary.
func (s *service) ExecuteQuery(ctx context.Context, query string) *Result {
	requestID := uuid.NewString()
	slog.Info("executing SPARQL query", "endpoint", s.endpoint, "request_id", requestID)

	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		errMessage := fmt.Sprintf("An error occurred while connecting to GraphDB: %v", err)
		slog.Error(errMessage, "request_id", requestID)
		return NewErrorResult(errMessage)
	}
	req.Header.Set("Content-Type", contentTypeForm)
	req.Header.Set("Accept", acceptSPARQLJSON)
	req.SetBasicAuth(s.username, s.password)

	resp, err := s.client.Do(req)
	if err != nil {
		errMessage := fmt.Sprintf("An error occurred while connecting to GraphDB: %v", err)
		slog.Error(errMessage, "request_id", requestID)
		return NewErrorResult(errMessage)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errMessage := fmt.Sprintf("An error occurred while connecting to GraphDB: %v", err)
		slog.Error(errMessage, "request_id", requestID)
		return NewErrorResult(errMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errMessage := fmt.Sprintf("HTTP error occurred: %d - %s", resp.StatusCode, string(body))
		slog.Error(errMessage, "request_id", requestID)
		return NewErrorResult(errMessage)
	}

	if !json.Valid(body) {
		slog.Error("failed to decode JSON response from GraphDB", "request_id", requestID)
		return NewErrorResult("Invalid JSON response from GraphDB.")
	}

	slog.Debug("SPARQL query succeeded", "request_id", requestID, "bytes", len(body))
	return NewDataResult(json.RawMessage(body))
}

// VerifyConnectivity sends a trivial ASK query and reports any fault as a
// hard error. Run once at startup before the server accepts tool calls.
func (s *service) VerifyConnectivity(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result := s.ExecuteQuery(ctx, connectivityQuery)
	if result.IsError() {
		return fmt.Errorf("GraphDB endpoint %s is not reachable: %s", s.endpoint, result.Err)
	}
	return nil
}
