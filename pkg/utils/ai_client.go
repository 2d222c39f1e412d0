package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// GenerationRequest is the contract the itinerary pipeline imposes on any
// text-completion backend: one system prompt, one user prompt, and sampling
// parameters. Anything provider specific stays behind the client.
type GenerationRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

type GenerationClientInterface interface {
	// GenerateCompletion returns the raw completion text or an error. The
	// orchestrator treats any error as a structural failure for that attempt.
	GenerateCompletion(ctx context.Context, req GenerationRequest) (string, error)

	// GetEmbedding converts free text into a vector for similarity search.
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)

	Close() error
}

// NewGenerationClient builds either an OpenAI or Gemini backed client based
// on configuration.
func NewGenerationClient(provider, apiKey, model string) (GenerationClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerationClient(apiKey, model), nil
	case "gemini":
		client, err := NewGeminiGenerationClient(apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", provider)
	}
}
