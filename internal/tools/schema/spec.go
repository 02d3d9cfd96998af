package schema

import "github.com/mark3labs/mcp-go/mcp"

// GetSchemaSpec returns the tool specification for get-schema
func GetSchemaSpec() mcp.Tool {
	return mcp.NewTool("get-schema",
		mcp.WithDescription(`Introspects the spendcast financial knowledge graph and returns the classes
and properties that actually occur in the store, with usage counts.

Use this tool before writing SPARQL when you are unsure which pfm: classes or
properties exist. The result shows the live contents of the repository, not
the ontology document: a class listed here is guaranteed to have instances.

Typical workflow:
1. Call get-schema to discover classes (pfm:Account, pfm:FinancialTransaction, ...)
2. Pick the properties you need from the property list
3. Write the query and run it with execute-sparql`),
		mcp.WithTitleAnnotation("Get Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
