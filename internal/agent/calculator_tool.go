package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
)

// CalculatorTool evaluates arithmetic expressions. The model is bad at
// arithmetic; retrieved amounts get summed and compared here instead.
// Expressions are evaluated as constant expressions, so there is no access
// to identifiers, calls or anything with side effects.
type CalculatorTool struct{}

// NewCalculatorTool creates a calculator tool.
func NewCalculatorTool() *CalculatorTool {
	return &CalculatorTool{}
}

func (t *CalculatorTool) Name() string {
	return "calculator"
}

func (t *CalculatorTool) Description() string {
	return "Performs basic arithmetic calculations. Supports +, -, *, /, parentheses and numeric literals, e.g. \"(120.50 + 34.20) * 0.081\"."
}

func (t *CalculatorTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"expression": {
				"type": "string",
				"description": "The arithmetic expression to evaluate"
			}
		},
		"required": ["expression"]
	}`)
}

type calculatorInput struct {
	Expression string `json:"expression"`
}

func (t *CalculatorTool) Call(ctx context.Context, input json.RawMessage) (string, error) {
	var args calculatorInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", err
	}
	if args.Expression == "" {
		return "", errors.New("expression parameter is required")
	}

	slog.Info("calculator tool called", "expression", args.Expression)

	result, err := types.Eval(token.NewFileSet(), nil, token.NoPos, args.Expression)
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	if result.Value == nil {
		return "", errors.New("expression is not a constant arithmetic expression")
	}
	return result.Value.String(), nil
}
