package guidance

import (
	"strings"
	"testing"

	"github.com/spendcast/graphdb-mcp-finance/tools"
)

func TestWalkConfigDirectoryFindsFinanceTools(t *testing.T) {
	EmbeddedFS = tools.ConfigFiles

	configs, err := WalkConfigDirectory("../../../tools/config")
	if err != nil {
		t.Fatalf("WalkConfigDirectory failed: %v", err)
	}

	financeTools := map[string]bool{
		"account-overview": false,
		"analyze-spending": false,
		"lookup-receipts":  false,
	}

	for _, config := range configs {
		if config.Category != "finance" {
			continue
		}
		if _, expected := financeTools[config.Name]; expected {
			financeTools[config.Name] = true
		}
	}

	for name, found := range financeTools {
		if !found {
			t.Errorf("Expected finance tool not found: %s", name)
		}
	}
}

func TestToolsHaveRequiredFields(t *testing.T) {
	EmbeddedFS = tools.ConfigFiles

	configs, err := WalkConfigDirectory("../../../tools/config")
	if err != nil {
		t.Fatalf("WalkConfigDirectory failed: %v", err)
	}
	if len(configs) == 0 {
		t.Fatal("no guidance tool configs found")
	}

	for _, config := range configs {
		if config.Name == "" {
			t.Error("Tool missing name")
		}
		if config.Description == "" {
			t.Errorf("Tool %s missing description", config.Name)
		}
		if config.Category == "" {
			t.Errorf("Tool %s missing category", config.Name)
		}
		if len(config.Examples) == 0 {
			t.Errorf("Tool %s has no worked examples", config.Name)
		}
	}
}

func TestValidateParameters(t *testing.T) {
	tests := []struct {
		name    string
		params  []ParameterConfig
		wantErr bool
	}{
		{
			name:    "empty params is valid",
			params:  []ParameterConfig{},
			wantErr: false,
		},
		{
			name: "valid params",
			params: []ParameterConfig{
				{Name: "from_date", Type: "string"},
				{Name: "to_date", Type: "string"},
			},
			wantErr: false,
		},
		{
			name:    "missing name is invalid",
			params:  []ParameterConfig{{Type: "integer"}},
			wantErr: true,
		},
		{
			name: "duplicate name is invalid",
			params: []ParameterConfig{
				{Name: "foo", Type: "string"},
				{Name: "foo", Type: "integer"},
			},
			wantErr: true,
		},
		{
			name:    "invalid type is invalid",
			params:  []ParameterConfig{{Name: "foo", Type: "datetime"}},
			wantErr: true,
		},
		{
			name:    "empty type is valid",
			params:  []ParameterConfig{{Name: "foo"}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParameters(tt.params)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateParameters() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildEnrichedDescription(t *testing.T) {
	config := &ToolConfig{
		Name:        "analyze-spending",
		Description: "Spending guidance.",
		Intent:      "Use for spending questions.",
		Examples: []ExampleConfig{
			{Question: "Show my expenses", SPARQL: "SELECT ?t WHERE { ?t a pfm:FinancialTransaction }"},
		},
		ReferenceSchema: &ReferenceSchemaConfig{
			Prefixes: []string{"PREFIX pfm: <https://static.rwpz.net/spendcast/schema#>"},
			Classes:  []string{"pfm:FinancialTransaction"},
		},
		Parameters: []ParameterConfig{
			{Name: "from_date", Type: "string", Description: "Range start"},
		},
	}

	text := buildEnrichedDescription(config)

	for _, want := range []string{
		"Spending guidance.",
		"## Intent",
		"## Worked Examples",
		"Show my expenses",
		"## Reference Schema",
		"pfm:FinancialTransaction",
		"## Parameters",
		"from_date",
		"execute-sparql",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("enriched description missing %q", want)
		}
	}
}
