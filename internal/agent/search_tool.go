package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultSearchEndpoint = "https://api.duckduckgo.com/"
	searchTimeout         = 15 * time.Second
	maxRelatedTopics      = 5
)

// SearchTool answers general-knowledge questions through the DuckDuckGo
// Instant Answer API. It is independent of the knowledge graph; the agent
// uses it for anything the graph cannot answer.
type SearchTool struct {
	endpoint string
	client   *http.Client
}

// NewSearchTool creates a search tool with its own HTTP client.
func NewSearchTool() *SearchTool {
	return &SearchTool{
		endpoint: defaultSearchEndpoint,
		client:   &http.Client{Timeout: searchTimeout},
	}
}

func (t *SearchTool) Name() string {
	return "web-search"
}

func (t *SearchTool) Description() string {
	return "Searches the web via DuckDuckGo and returns a short text summary. Use for general knowledge questions that the financial knowledge graph cannot answer."
}

func (t *SearchTool) InputSchema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"query": {
				"type": "string",
				"description": "The search query"
			}
		},
		"required": ["query"]
	}`)
}

type searchInput struct {
	Query string `json:"query"`
}

// instantAnswer is the subset of the DuckDuckGo response the tool surfaces.
type instantAnswer struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Answer        string `json:"Answer"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

func (t *SearchTool) Call(ctx context.Context, input json.RawMessage) (string, error) {
	var args searchInput
	if err := json.Unmarshal(input, &args); err != nil {
		return "", err
	}
	if args.Query == "" {
		return "", errors.New("query parameter is required")
	}

	slog.Info("web search tool called", "query", args.Query)

	params := url.Values{
		"q":       {args.Query},
		"format":  {"json"},
		"no_html": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var answer instantAnswer
	if err := json.Unmarshal(body, &answer); err != nil {
		return "", fmt.Errorf("failed to decode search response: %w", err)
	}

	return formatAnswer(&answer), nil
}

// formatAnswer flattens the instant answer into a short text block.
func formatAnswer(answer *instantAnswer) string {
	var sb strings.Builder

	if answer.Answer != "" {
		sb.WriteString(answer.Answer + "\n")
	}
	if answer.AbstractText != "" {
		sb.WriteString(answer.AbstractText + "\n")
		if answer.AbstractURL != "" {
			sb.WriteString("Source: " + answer.AbstractURL + "\n")
		}
	}

	count := 0
	for _, topic := range answer.RelatedTopics {
		if topic.Text == "" {
			continue
		}
		if count == 0 {
			sb.WriteString("Related:\n")
		}
		sb.WriteString("- " + topic.Text + "\n")
		count++
		if count >= maxRelatedTopics {
			break
		}
	}

	if sb.Len() == 0 {
		return "No results found."
	}
	return strings.TrimSpace(sb.String())
}
