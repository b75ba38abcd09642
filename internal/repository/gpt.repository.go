package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/ayush6624/go-chatgpt"
)

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     string
}

// models accepted by chatgpt.Client.Send; anything else fails every request
var supportedGptModels = []chatgpt.ChatGPTModel{
	chatgpt.GPT35Turbo,
	chatgpt.GPT35Turbo0301,
	chatgpt.GPT35Turbo0613,
	chatgpt.GPT35Turbo16k,
	chatgpt.GPT35Turbo16k0613,
	chatgpt.GPT4,
	chatgpt.GPT4_0314,
	chatgpt.GPT4_0613,
	chatgpt.GPT4_32k,
	chatgpt.GPT4_32k_0314,
	chatgpt.GPT4_32k_0613,
}

func NewGptRepository(apiKey, model string) (TextGenerationRepository, error) {
	if !slices.Contains(supportedGptModels, chatgpt.ChatGPTModel(model)) {
		return nil, fmt.Errorf("unsupported openai model %q", model)
	}

	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
		Model:     model,
	}, nil
}

func (h gptRepositoryHandler) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := []chatgpt.ChatMessage{}
	if req.SystemPrompt != "" {
		messages = append(messages, chatgpt.ChatMessage{
			Role:    chatgpt.ChatGPTModelRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, chatgpt.ChatMessage{
		Role:    chatgpt.ChatGPTModelRoleUser,
		Content: req.Prompt,
	})

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model:       chatgpt.ChatGPTModel(h.Model),
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
