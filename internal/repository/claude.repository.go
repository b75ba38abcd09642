package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type claudeRepositoryHandler struct {
	Client anthropic.Client
	Model  string
}

func NewClaudeRepository(apiKey, model string) TextGenerationRepository {
	return claudeRepositoryHandler{
		Client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		Model:  model,
	}
}

func (h claudeRepositoryHandler) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(h.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	resp, err := h.Client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude messages call failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude returned no text")
	}

	return sb.String(), nil
}
