package graphdb

//go:generate mockgen -destination=mocks/mock_graphdb.go -package=graphdb_mocks github.com/spendcast/graphdb-mcp-finance/internal/graphdb Service
import (
	"context"
)

// Service is the boundary the tool layer talks to. One call is one SPARQL
// round trip; soft per-query faults come back inside the Result, never as a
// Go error.
type Service interface {
	// ExecuteQuery runs one SPARQL query against the store and returns the
	// discriminated outcome. It never returns nil.
	ExecuteQuery(ctx context.Context, query string) *Result
	// VerifyConnectivity checks that the endpoint answers a trivial query.
	// Used once at startup; a failure here is an operational fault.
	VerifyConnectivity(ctx context.Context) error
	// Endpoint returns the configured SPARQL endpoint URL.
	Endpoint() string
}
