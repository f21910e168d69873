package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewClient creates a provider client based on the configuration.
// Gemini is the default provider; it tolerates a missing API key at
// construction time so the process can start without credentials and
// fail at the call boundary instead.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return newGeminiClient(ctx, cfg)
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
