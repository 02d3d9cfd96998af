// Package agent hosts the conversational loop that connects an Anthropic
// model with the SPARQL and web-search tools.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
)

// Default configuration values
const (
	DefaultModel     = "claude-sonnet-4-5"
	DefaultMaxTokens = 4096
	DefaultMaxTurns  = 10
)

// Config holds the configuration for an Agent.
type Config struct {
	// APIKey is the Anthropic API key. Required.
	APIKey string

	// Model is the Anthropic model to use.
	Model string

	// MaxTokens is the maximum number of tokens in a response.
	MaxTokens int

	// SystemPrompt sets the agent's standing instructions.
	SystemPrompt string

	// MaxTurns bounds the tool-use loop per prompt.
	MaxTurns int
}

// Validate checks the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.MaxTurns == 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	return nil
}

// Agent drives the model/tool loop. Conversation state lives in named
// threads; each thread keeps its full message history for the lifetime of
// the process.
type Agent struct {
	client     anthropic.Client
	config     Config
	tools      map[string]Tool
	toolParams []anthropic.ToolUnionParam

	mu      sync.Mutex
	threads map[string][]anthropic.MessageParam
}

// New creates an Agent with the given configuration and tool set.
func New(config Config, tools []Tool) (*Agent, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	toolParams := make([]anthropic.ToolUnionParam, len(tools))
	toolMap := make(map[string]Tool, len(tools))
	for i, t := range tools {
		toolParams[i] = toolToParam(t)
		toolMap[t.Name()] = t
	}

	return &Agent{
		client:     anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		config:     config,
		tools:      toolMap,
		toolParams: toolParams,
		threads:    make(map[string][]anthropic.MessageParam),
	}, nil
}

// NewThread creates an empty conversation thread and returns its id.
func (a *Agent) NewThread() string {
	id := uuid.NewString()
	a.mu.Lock()
	a.threads[id] = []anthropic.MessageParam{}
	a.mu.Unlock()
	return id
}

// toolToParam converts a Tool to the Anthropic tool parameter shape.
func toolToParam(t Tool) anthropic.ToolUnionParam {
	var schemaMap map[string]any
	if err := json.Unmarshal(t.InputSchema(), &schemaMap); err != nil {
		slog.Error("tool has an unparseable input schema", "tool", t.Name(), "error", err)
	}

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        t.Name(),
			Description: anthropic.String(t.Description()),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       "object",
				Properties: schemaMap["properties"],
			},
		},
	}
}

// Prompt sends a user message on a thread and runs the loop until the model
// stops calling tools. It returns the final assistant text.
func (a *Agent) Prompt(ctx context.Context, threadID, content string) (string, error) {
	a.mu.Lock()
	messages, ok := a.threads[threadID]
	a.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("unknown thread: %s", threadID)
	}

	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(content)))

	var finalText string
	for turn := 0; turn < a.config.MaxTurns; turn++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		var systemBlocks []anthropic.TextBlockParam
		if a.config.SystemPrompt != "" {
			systemBlocks = []anthropic.TextBlockParam{{Text: a.config.SystemPrompt}}
		}

		message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(a.config.Model),
			MaxTokens: int64(a.config.MaxTokens),
			System:    systemBlocks,
			Messages:  messages,
			Tools:     a.toolParams,
		})
		if err != nil {
			return "", fmt.Errorf("model request failed: %w", err)
		}

		messages = append(messages, message.ToParam())
		finalText = extractText(message)

		toolCalls := extractToolCalls(message)
		if len(toolCalls) == 0 {
			break
		}

		results := a.executeTools(ctx, toolCalls)
		messages = append(messages, anthropic.NewUserMessage(results...))
	}

	a.mu.Lock()
	a.threads[threadID] = messages
	a.mu.Unlock()

	return finalText, nil
}

// toolCall is one tool invocation requested by the model.
type toolCall struct {
	id    string
	name  string
	input json.RawMessage
}

func extractToolCalls(msg *anthropic.Message) []toolCall {
	var calls []toolCall
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.ToolUseBlock:
			inputJSON, _ := json.Marshal(b.Input)
			calls = append(calls, toolCall{id: b.ID, name: b.Name, input: inputJSON})
		}
	}
	return calls
}

func extractText(msg *anthropic.Message) string {
	var sb strings.Builder
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			sb.WriteString(b.Text)
		}
	}
	return sb.String()
}

// executeTools runs every requested tool call and converts failures into
// model-readable messages. Tool failures never abort the loop; the model
// sees the translated message and decides what to do next.
func (a *Agent) executeTools(ctx context.Context, calls []toolCall) []anthropic.ContentBlockParamUnion {
	results := make([]anthropic.ContentBlockParamUnion, 0, len(calls))
	for _, call := range calls {
		output, err := a.executeTool(ctx, call)
		if err != nil {
			slog.Warn("tool call failed", "tool", call.name, "error", err)
			results = append(results, anthropic.NewToolResultBlock(call.id, toolFailureMessage(err), true))
			continue
		}
		results = append(results, anthropic.NewToolResultBlock(call.id, output, false))
	}
	return results
}

func (a *Agent) executeTool(ctx context.Context, call toolCall) (string, error) {
	t, ok := a.tools[call.name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", call.name)
	}
	return t.Call(ctx, call.input)
}

// toolFailureMessage translates a tool failure into the text the model sees.
// Pure function: same error, same message.
func toolFailureMessage(err error) string {
	return fmt.Sprintf("Tool error: Please check your input and try again. (%v)", err)
}
