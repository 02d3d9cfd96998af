package docs

import (
	_ "embed"
)

// FinancialAssistantPrompt embeds the standing instructions for the
// conversational agent: how to use the knowledge graph, when to fall back
// to web search, and how to present results to the user.
//
//go:embed prompts/financial_assistant.md
var FinancialAssistantPrompt string
