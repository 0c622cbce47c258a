// Package llm drafts one-line index summaries for entries. The LLM layer is
// optional and clearly separated: it never participates in integrity
// scanning and a failure here degrades to the manually supplied summary.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/lorehaven/canon/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a one-line summary for an entry
	Summarize(ctx context.Context, req SummarizeRequest) (string, error)
}

// SummarizeRequest contains the input for summary drafting
type SummarizeRequest struct {
	// Name is the entry's display name
	Name string

	// Category is the entry's canonical category
	Category model.Category

	// Body is the entry body (may still be the scaffold template)
	Body string

	// MaxTokens limits the response length
	MaxTokens int
}

// Config holds LLM provider configuration
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string // Optional, for OpenAI-compatible endpoints
	Timeout   int    // Seconds
	MaxTokens int
}

// NewProvider creates a provider from configuration. An empty provider name
// means the LLM layer is disabled and nil is returned without error.
// OpenAI-compatible local endpoints are reachable via BaseURL.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}

// BuildPrompt assembles the summary prompt for an entry.
func BuildPrompt(req SummarizeRequest) string {
	var b strings.Builder
	b.WriteString("Write a single-sentence summary (under 120 characters) for a ")
	b.WriteString(strings.TrimSuffix(string(req.Category), "s"))
	b.WriteString(" entry in a fictional-world reference wiki.\n\n")
	fmt.Fprintf(&b, "Entry name: %s\n\n", req.Name)
	b.WriteString("Entry body:\n")
	b.WriteString(req.Body)
	b.WriteString("\n\nRespond with the sentence only: no quotes, no markdown, no preamble.")
	return b.String()
}

// CleanSummary normalizes a model response into one index-safe line: first
// line only, surrounding quotes stripped, pipes removed so the Markdown
// table stays intact.
func CleanSummary(raw string) string {
	line := strings.TrimSpace(raw)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.Trim(line, `"'`)
	line = strings.ReplaceAll(line, "|", "/")
	return strings.TrimSpace(line)
}
