package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/medicore-hq/medicore/internal/advisor"
	"github.com/medicore-hq/medicore/internal/llm"
)

// createAdvisor builds the AI advisor from configuration. Shared by the
// dashboard and the one-shot commands.
//
// A missing Gemini key does not fail here: the process starts and every
// invocation fails at the remote boundary instead. Explicitly configured
// openai/anthropic providers without a key are a configuration error.
func createAdvisor(ctx context.Context) (*advisor.Advisor, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini"
	}

	config := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}

	switch provider {
	case "gemini":
		apiKey := viper.GetString("llm.gemini_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Warn("no Gemini API key configured; AI invocations will fail until GEMINI_API_KEY is set")
		}
		config.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
		config.APIKey = apiKey

	case "anthropic":
		apiKey := viper.GetString("llm.anthropic_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
		config.APIKey = apiKey
	}

	client, err := llm.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return advisor.New(client, slog.Default())
}
