package repository

import (
	"context"
	"testing"

	"investmentanalyzer/internal/util"

	"github.com/stretchr/testify/require"
)

func TestNewTextGenerationRepository(t *testing.T) {
	t.Run("missing key yields erroring repository", func(t *testing.T) {
		repo, err := NewTextGenerationRepository(context.Background(), util.Secrets{
			LlmProvider: util.LlmProviderOpenAI,
		})
		require.NoError(t, err)

		_, err = repo.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
		require.ErrorIs(t, err, ErrLlmNotConfigured)
	})

	t.Run("claude client", func(t *testing.T) {
		repo, err := NewTextGenerationRepository(context.Background(), util.Secrets{
			LlmProvider: util.LlmProviderClaude,
			Claude:      util.LlmSecrets{ApiKey: "key", Model: "claude-3-5-haiku-latest"},
		})
		require.NoError(t, err)
		require.IsType(t, claudeRepositoryHandler{}, repo)
	})

	t.Run("openai client", func(t *testing.T) {
		repo, err := NewTextGenerationRepository(context.Background(), util.Secrets{
			LlmProvider: util.LlmProviderOpenAI,
			OpenAI:      util.LlmSecrets{ApiKey: "key", Model: "gpt-4"},
		})
		require.NoError(t, err)
		require.IsType(t, gptRepositoryHandler{}, repo)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewTextGenerationRepository(context.Background(), util.Secrets{
			LlmProvider: "mistral",
			OpenAI:      util.LlmSecrets{ApiKey: "key"},
		})
		require.Error(t, err)
	})

	t.Run("openai model outside the client allowlist fails at construction", func(t *testing.T) {
		_, err := NewTextGenerationRepository(context.Background(), util.Secrets{
			LlmProvider: util.LlmProviderOpenAI,
			OpenAI:      util.LlmSecrets{ApiKey: "key", Model: "gpt-4o"},
		})
		require.ErrorContains(t, err, `unsupported openai model "gpt-4o"`)
	})
}

func TestNewGptRepository(t *testing.T) {
	for _, model := range []string{"gpt-4", "gpt-3.5-turbo", "gpt-4-32k-0613"} {
		repo, err := NewGptRepository("key", model)
		require.NoError(t, err, model)
		require.Equal(t, model, string(repo.(gptRepositoryHandler).Model))
	}

	_, err := NewGptRepository("key", "")
	require.Error(t, err)
}
