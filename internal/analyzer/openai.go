package analyzer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/docuinsight/document-insight-api/internal/models"
)

type openAIAnalyzer struct {
	client *openai.Client
	model  string
}

// NewOpenAIAnalyzer builds the OpenAI-compatible generation backend. baseURL
// overrides the default endpoint and is mainly useful for gateways and tests.
func NewOpenAIAnalyzer(apiKey, model, baseURL string) Analyzer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openAIAnalyzer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (a *openAIAnalyzer) Model() string {
	return a.model
}

func (a *openAIAnalyzer) Generate(ctx context.Context, instruction, extractedText string, params models.InferenceParams) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       a.model,
		MaxTokens:   params.MaxNewTokens,
		Temperature: float32(params.Temperature),
		TopP:        float32(params.TopP),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserMessage(instruction, extractedText)},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model response contains no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
