package agent

import (
	"context"
	"encoding/json"
)

// Tool is the capability contract the agent depends on: a name, a
// description the model reads to decide when to invoke it, a JSON Schema for
// its input, and a call entry point. Concrete tools register explicitly;
// there is no dynamic discovery.
type Tool interface {
	// Name returns the unique identifier the model uses to invoke the tool.
	Name() string

	// Description tells the model what the tool does and when to use it.
	Description() string

	// InputSchema returns the JSON Schema for the tool's input object.
	InputSchema() json.RawMessage

	// Call runs the tool with input conforming to InputSchema and blocks
	// until the result is available. Soft per-call faults (a failed query,
	// an unreachable backend) come back inside the result string; the error
	// return is reserved for unusable input.
	Call(ctx context.Context, input json.RawMessage) (string, error)
}

// CallOutcome is the result of a non-blocking tool invocation.
type CallOutcome struct {
	Output string
	Err    error
}

// CallAsync runs a tool without blocking the caller. The returned channel
// delivers exactly one outcome, identical to what a direct Call with the
// same input would produce.
func CallAsync(ctx context.Context, t Tool, input json.RawMessage) <-chan CallOutcome {
	out := make(chan CallOutcome, 1)
	go func() {
		output, err := t.Call(ctx, input)
		out <- CallOutcome{Output: output, Err: err}
		close(out)
	}()
	return out
}
