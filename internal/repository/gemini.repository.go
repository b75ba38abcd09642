package repository

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiRepositoryHandler struct {
	Client *genai.Client
	Model  string
}

func NewGeminiRepository(ctx context.Context, apiKey, model string) (TextGenerationRepository, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct gemini client: %w", err)
	}

	return geminiRepositoryHandler{
		Client: client,
		Model:  model,
	}, nil
}

func (h geminiRepositoryHandler) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	result, err := h.Client.Models.GenerateContent(ctx, h.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	return geminiText(result)
}

func geminiText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no content generated")
	}

	return sb.String(), nil
}
