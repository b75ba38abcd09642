package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_repository investmentanalyzer/internal/repository NewsRepository,PriceRepository,QuoteRepository,TextGenerationRepository

import (
	"context"
	"errors"
	"fmt"

	"investmentanalyzer/internal/util"
)

// CompletionRequest is a single system + user prompt exchange
type CompletionRequest struct {
	SystemPrompt string
	Prompt       string
	Temperature  float64
	MaxTokens    int
}

// TextGenerationRepository sends a prompt to a hosted language model and
// returns the first completion.
type TextGenerationRepository interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var ErrLlmNotConfigured = errors.New("language model api key is not configured")

type unconfiguredTextGenerationRepository struct {
	provider string
}

func (h unconfiguredTextGenerationRepository) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return "", fmt.Errorf("%s: %w", h.provider, ErrLlmNotConfigured)
}

// NewTextGenerationRepository picks the client for the configured provider.
// A missing api key is not fatal; every completion then fails instead.
func NewTextGenerationRepository(ctx context.Context, secrets util.Secrets) (TextGenerationRepository, error) {
	llm := secrets.ActiveLlm()
	if llm.ApiKey == "" {
		return unconfiguredTextGenerationRepository{provider: secrets.LlmProvider}, nil
	}

	switch secrets.LlmProvider {
	case util.LlmProviderOpenAI:
		return NewGptRepository(llm.ApiKey, llm.Model)
	case util.LlmProviderGemini:
		return NewGeminiRepository(ctx, llm.ApiKey, llm.Model)
	case util.LlmProviderClaude:
		return NewClaudeRepository(llm.ApiKey, llm.Model), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", secrets.LlmProvider)
	}
}
