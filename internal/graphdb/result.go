package graphdb

import (
	"encoding/json"
)

// Result is the outcome of one query execution: either the raw
// SPARQL-results-JSON payload from the store, or a soft error description.
// Exactly one of the two arms is set. Transport faults, non-2xx statuses and
// undecodable bodies all land in the error arm so that the calling agent can
// reason about them; only operational misconfiguration surfaces as a Go error
// upstream of Result construction.
type Result struct {
	// Data is the decoded response body, passed through unreshaped.
	Data json.RawMessage
	// Err describes what went wrong when Data is nil.
	Err string
}

type errorPayload struct {
	Error string `json:"error"`
}

// NewDataResult wraps a successful payload.
func NewDataResult(data json.RawMessage) *Result {
	return &Result{Data: data}
}

// NewErrorResult wraps a soft error description.
func NewErrorResult(message string) *Result {
	return &Result{Err: message}
}

// IsError reports whether the error arm is set.
func (r *Result) IsError() bool {
	return r.Err != ""
}

// JSON renders the result the way the tool interface exposes it: the raw
// payload on success, {"error": "..."} on failure.
func (r *Result) JSON() ([]byte, error) {
	if r.IsError() {
		return json.Marshal(errorPayload{Error: r.Err})
	}
	return r.Data, nil
}
