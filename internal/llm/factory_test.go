package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientUnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Provider: "cortex9000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewClientRequiresKeyForHTTPProviders(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Provider: "openai"})
	require.Error(t, err)

	_, err = NewClient(context.Background(), Config{Provider: "anthropic"})
	require.Error(t, err)
}

func TestNewClientProviderNameIsCaseInsensitive(t *testing.T) {
	_, err := NewClient(context.Background(), Config{Provider: "OpenAI", APIKey: "sk-test"})
	require.NoError(t, err)

	_, err = NewClient(context.Background(), Config{Provider: "ANTHROPIC", APIKey: "sk-test"})
	require.NoError(t, err)
}

func TestOpenAIClientDefaults(t *testing.T) {
	c, err := newOpenAIClient(Config{APIKey: "sk-test"})
	require.NoError(t, err)

	oc, ok := c.(*openAIClient)
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", oc.model)
	assert.InDelta(t, 0.3, oc.temperature, 1e-9)
	assert.Equal(t, 1024, oc.maxTokens)
}

func TestAnthropicClientDefaults(t *testing.T) {
	c, err := newAnthropicClient(Config{APIKey: "sk-test", Model: "claude-sonnet-4-0", Temperature: 0.7, MaxTokens: 2048})
	require.NoError(t, err)

	ac, ok := c.(*anthropicClient)
	require.True(t, ok)
	assert.Equal(t, "claude-sonnet-4-0", ac.model)
	assert.InDelta(t, 0.7, ac.temperature, 1e-9)
	assert.Equal(t, 2048, ac.maxTokens)
}
