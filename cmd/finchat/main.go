// Command finchat is an interactive financial assistant on the terminal.
// It hosts an Anthropic model with the SPARQL, web-search and calculator
// tools and keeps one conversation thread for the session.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/spendcast/graphdb-mcp-finance/docs"
	"github.com/spendcast/graphdb-mcp-finance/internal/agent"
	"github.com/spendcast/graphdb-mcp-finance/internal/config"
	"github.com/spendcast/graphdb-mcp-finance/internal/graphdb"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbService := graphdb.NewService(cfg)

	a, err := agent.New(agent.Config{
		APIKey:       apiKey,
		SystemPrompt: docs.FinancialAssistantPrompt,
	}, []agent.Tool{
		agent.NewSPARQLTool(dbService),
		agent.NewSearchTool(),
		agent.NewCalculatorTool(),
	})
	if err != nil {
		return err
	}

	threadID := a.NewThread()
	ctx := context.Background()

	fmt.Println("spendcast financial assistant. Ask about your accounts and spending; empty line quits.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		answer, err := a.Prompt(ctx, threadID, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "prompt failed:", err)
			continue
		}
		fmt.Println(answer)
	}
	return scanner.Err()
}
