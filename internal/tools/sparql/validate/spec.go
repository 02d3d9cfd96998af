package validate

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ValidateSPARQLInput is the input contract for the validate-sparql tool.
type ValidateSPARQLInput struct {
	Query string `json:"query" jsonschema:"description=The SPARQL query string to validate"`
}

// ValidateSPARQLSpec returns the tool specification for validate-sparql.
func ValidateSPARQLSpec() mcp.Tool {
	return mcp.NewTool("validate-sparql",
		mcp.WithDescription(`Checks the shape of a SPARQL query before execution: presence of the required
pfm: (schema) and ex: (data instance) prefixes, a SELECT/ASK/CONSTRUCT/DESCRIBE
query form, and balanced braces around the WHERE clause.

The check is advisory. execute-sparql does not require a query to have passed
validation; use this tool to get an early diagnostic when a query keeps
failing against the store.`),
		mcp.WithInputSchema[ValidateSPARQLInput](),
		mcp.WithTitleAnnotation("Validate SPARQL"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
