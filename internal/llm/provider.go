// Package llm wraps the external generative services consulted by the
// screening pipeline: variant augmentation, fallback name extraction, and
// medium-confidence disambiguation. Every call site fails open or conservative;
// nothing in this package ever aborts a screening run.
package llm

import (
	"context"

	"github.com/ppiankov/namescreen/internal/model"
)

// Provider is a chat-completion backend
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete runs a single system+user completion and returns the text
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// CompletionRequest is a single prompt exchange
type CompletionRequest struct {
	// System sets the assistant role
	System string

	// Prompt is the user message
	Prompt string

	// Model overrides the configured model when set
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; screening prompts want it low
	Temperature float64
}

// CompletionResponse is the provider's reply
type CompletionResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds generative service configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g. Ollama, API-compatible proxies)
	BaseURL string

	// Timeout per API call, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond throttles calls across all three operations
	RequestsPerSecond float64

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "",
		Timeout:           30,
		MaxTokens:         500,
		RequestsPerSecond: 2,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:          c.Provider,
		Model:             c.Model,
		APIKey:            c.APIKey,
		BaseURL:           c.BaseURL,
		Timeout:           c.Timeout,
		MaxTokens:         c.MaxTokens,
		RequestsPerSecond: c.RequestsPerSecond,
	}
}
