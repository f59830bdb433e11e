package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/docuinsight/document-insight-api/internal/models"
)

type bedrockAnalyzer struct {
	client  *bedrockruntime.Client
	modelID string
}

func NewBedrockAnalyzer(ctx context.Context, region, modelID string) (Analyzer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &bedrockAnalyzer{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}, nil
}

func (a *bedrockAnalyzer) Model() string {
	return a.modelID
}

// messages-v1 invocation schema for the Nova model family.
type novaText struct {
	Text string `json:"text"`
}

type novaMessage struct {
	Role    string     `json:"role"`
	Content []novaText `json:"content"`
}

type novaInferenceConfig struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	TopP         float64 `json:"top_p"`
	TopK         int     `json:"top_k"`
	Temperature  float64 `json:"temperature"`
}

type novaRequest struct {
	SchemaVersion   string              `json:"schemaVersion"`
	Messages        []novaMessage       `json:"messages"`
	System          []novaText          `json:"system"`
	InferenceConfig novaInferenceConfig `json:"inferenceConfig"`
}

type novaResponse struct {
	Output struct {
		Message struct {
			Content []novaText `json:"content"`
		} `json:"message"`
	} `json:"output"`
}

func buildNovaRequest(instruction, extractedText string, params models.InferenceParams) novaRequest {
	return novaRequest{
		SchemaVersion: "messages-v1",
		Messages: []novaMessage{
			{
				Role:    "user",
				Content: []novaText{{Text: BuildUserMessage(instruction, extractedText)}},
			},
		},
		System: []novaText{{Text: SystemPrompt}},
		InferenceConfig: novaInferenceConfig{
			MaxNewTokens: params.MaxNewTokens,
			TopP:         params.TopP,
			TopK:         params.TopK,
			Temperature:  params.Temperature,
		},
	}
}

func parseNovaResponse(body []byte) (string, error) {
	var resp novaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal model response: %w", err)
	}

	if len(resp.Output.Message.Content) == 0 {
		return "", fmt.Errorf("model response contains no content")
	}

	return resp.Output.Message.Content[0].Text, nil
}

func (a *bedrockAnalyzer) Generate(ctx context.Context, instruction, extractedText string, params models.InferenceParams) (string, error) {
	body, err := json.Marshal(buildNovaRequest(instruction, extractedText, params))
	if err != nil {
		return "", fmt.Errorf("marshal model request: %w", err)
	}

	out, err := a.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(a.modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("invoke model %s: %w", a.modelID, err)
	}

	return parseNovaResponse(out.Body)
}
