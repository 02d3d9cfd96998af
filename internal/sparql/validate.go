// Package sparql holds query-shape checks for the spendcast knowledge graph.
package sparql

import (
	"strings"
)

// RequiredPrefixes are the namespace prefixes every useful query against the
// spendcast graph references: pfm: for schema terms, ex: for data instances.
// Order matters for the diagnostic message.
var RequiredPrefixes = []string{"pfm:", "ex:"}

// queryForms are the SPARQL query forms the store accepts on the query endpoint.
var queryForms = []string{"SELECT", "ASK", "CONSTRUCT", "DESCRIBE"}

// Validate performs a cheap shape check on a SPARQL query. It never errors;
// the result is advisory and the executor does not require it to have run.
// Checks run in order and the first failure wins.
func Validate(query string) (bool, string) {
	var missing []string
	for _, prefix := range RequiredPrefixes {
		if !strings.Contains(query, prefix) {
			missing = append(missing, prefix)
		}
	}
	if len(missing) > 0 {
		return false, "Missing required prefixes: " + strings.Join(missing, ", ")
	}

	upper := strings.ToUpper(strings.TrimSpace(query))
	validForm := false
	for _, form := range queryForms {
		if strings.HasPrefix(upper, form) {
			validForm = true
			break
		}
	}
	if !validForm {
		return false, "Query must start with SELECT, ASK, CONSTRUCT, or DESCRIBE"
	}

	if strings.Count(query, "{") != strings.Count(query, "}") {
		return false, "Unbalanced braces in SPARQL query"
	}

	if !strings.Contains(query, "{") || !strings.Contains(query, "}") {
		return false, "Missing WHERE clause with braces"
	}

	return true, "Query is valid"
}
