//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/spendcast/graphdb-mcp-finance/internal/config"
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools"
	"github.com/spendcast/graphdb-mcp-finance/internal/tools/sparql/query"
)

const (
	graphdbImage = "ontotext/graphdb:10.7.6"
	repositoryID = "spendcast-test"

	repositoryConfig = `
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix rep: <http://www.openrdf.org/config/repository#> .
@prefix sr: <http://www.openrdf.org/config/repository/sail#> .
@prefix sail: <http://www.openrdf.org/config/sail#> .

[] a rep:Repository ;
    rep:repositoryID "spendcast-test" ;
    rdfs:label "spendcast integration test repository" ;
    rep:repositoryImpl [
        rep:repositoryType "graphdb:SailRepository" ;
        sr:sailImpl [
            sail:sailType "graphdb:Sail" ;
        ]
    ] .
`

	seedUpdate = `
PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
PREFIX ex: <https://static.rwpz.net/spendcast/>
INSERT DATA {
    ex:account-checking a pfm:Account ;
        pfm:accountName "Everyday Checking" .
    ex:txn-1 a pfm:FinancialTransaction ;
        pfm:hasParticipant ex:account-checking .
}
`
)

var dbService graphdb.Service

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        graphdbImage,
			ExposedPorts: []string{"7200/tcp"},
			WaitingFor: wait.ForHTTP("/rest/repositories").
				WithPort("7200/tcp").
				WithStartupTimeout(3 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start GraphDB container:", err)
		os.Exit(1)
	}

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to resolve container host:", err)
		os.Exit(1)
	}
	port, err := container.MappedPort(ctx, "7200/tcp")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to resolve container port:", err)
		os.Exit(1)
	}
	baseURL := fmt.Sprintf("http://%s:%s", host, port.Port())

	if err := createRepository(baseURL); err != nil {
		fmt.Fprintln(os.Stderr, "failed to create repository:", err)
		os.Exit(1)
	}
	if err := seedData(baseURL); err != nil {
		fmt.Fprintln(os.Stderr, "failed to seed data:", err)
		os.Exit(1)
	}

	os.Setenv("GRAPHDB_URL", baseURL+"/repositories/"+repositoryID)
	os.Setenv("GRAPHDB_USER", "admin")
	os.Setenv("GRAPHDB_PASSWORD", "root")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	dbService = graphdb.NewService(cfg)

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// createRepository uploads the repository config through the workbench REST
// API. GraphDB has no repositories until one is created.
func createRepository(baseURL string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("config", "config.ttl")
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(repositoryConfig)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	resp, err := http.Post(baseURL+"/rest/repositories", writer.FormDataContentType(), &body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status creating repository: %d", resp.StatusCode)
	}
	return nil
}

// seedData loads a minimal account and transaction through the update
// endpoint, which the read-only query service deliberately does not expose.
func seedData(baseURL string) error {
	form := url.Values{"update": {seedUpdate}}
	resp, err := http.Post(
		baseURL+"/repositories/"+repositoryID+"/statements",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status seeding data: %d", resp.StatusCode)
	}
	return nil
}

func TestVerifyConnectivity(t *testing.T) {
	if err := dbService.VerifyConnectivity(context.Background()); err != nil {
		t.Fatalf("connectivity check failed: %v", err)
	}
}

func TestExecuteQueryAgainstLiveStore(t *testing.T) {
	q := `
PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
PREFIX ex: <https://static.rwpz.net/spendcast/>
SELECT ?name WHERE { ?account a pfm:Account ; pfm:accountName ?name }
`
	result := dbService.ExecuteQuery(context.Background(), q)
	if result.IsError() {
		t.Fatalf("query failed: %s", result.Err)
	}

	var decoded struct {
		Results struct {
			Bindings []map[string]struct {
				Value string `json:"value"`
			} `json:"bindings"`
		} `json:"results"`
	}
	if err := json.Unmarshal(result.Data, &decoded); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(decoded.Results.Bindings) != 1 {
		t.Fatalf("expected 1 account, got %d", len(decoded.Results.Bindings))
	}
	if got := decoded.Results.Bindings[0]["name"].Value; got != "Everyday Checking" {
		t.Fatalf("unexpected account name: %q", got)
	}
}

func TestExecuteQuerySyntaxErrorIsSoft(t *testing.T) {
	result := dbService.ExecuteQuery(context.Background(), "SELECT ?x WHERE { broken")
	if !result.IsError() {
		t.Fatal("expected a soft error for a malformed query")
	}
	if !strings.Contains(result.Err, "HTTP error occurred") {
		t.Fatalf("unexpected error text: %s", result.Err)
	}
}

func TestExecuteSPARQLToolAgainstLiveStore(t *testing.T) {
	handler := query.ExecuteSPARQLHandler(&tools.ToolDependencies{GraphDB: dbService})

	req := mcp.CallToolRequest{}
	req.Params.Name = "execute-sparql"
	req.Params.Arguments = map[string]any{
		"query": `
PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>
PREFIX ex: <https://static.rwpz.net/spendcast/>
ASK { ex:txn-1 a pfm:FinancialTransaction }
`,
	}

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned hard error: %v", err)
	}
	if res.IsError {
		t.Fatalf("handler returned tool error: %+v", res.Content)
	}

	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("expected text content")
	}
	var decoded struct {
		Boolean bool `json:"boolean"`
	}
	if err := json.Unmarshal([]byte(text.Text), &decoded); err != nil {
		t.Fatalf("failed to decode ASK result: %v", err)
	}
	if !decoded.Boolean {
		t.Fatal("expected ASK to be true")
	}
}
