package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"querygen-ai/internal/utils"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client              *genai.Client
	model               string
	maxCompletionTokens int
	temperature         float32
	extractionSchema    *genai.Schema
}

func NewGeminiClient(config Config) (*GeminiClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	schema, ok := config.ExtractionSchema.(*genai.Schema)
	if !ok {
		return nil, fmt.Errorf("gemini extraction schema must be a *genai.Schema")
	}

	return &GeminiClient{
		client:              client,
		model:               config.Model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         config.Temperature,
		extractionSchema:    schema,
	}, nil
}

func (c *GeminiClient) ExtractStructured(ctx context.Context, systemPrompt, userText string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.MaxOutputTokens = utils.ToInt32Ptr(int32(c.maxCompletionTokens))
	model.SetTemperature(c.temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = c.extractionSchema
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	result, err := model.GenerateContent(ctx, genai.Text(userText))
	if err != nil {
		log.Printf("ExtractStructured -> gemini API error: %v", err)
		return "", fmt.Errorf("%w: gemini: %v", ErrServiceUnavailable, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no structured content", ErrMalformedResponse)
	}

	responseText := fmt.Sprintf("%v", result.Candidates[0].Content.Parts[0])
	responseText = strings.ReplaceAll(responseText, "```json", "")
	responseText = strings.ReplaceAll(responseText, "```", "")
	return responseText, nil
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.MaxOutputTokens = utils.ToInt32Ptr(int32(c.maxCompletionTokens))
	model.SetTemperature(c.temperature)

	result, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Complete -> gemini API error: %v", err)
		return "", fmt.Errorf("%w: gemini: %v", ErrServiceUnavailable, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: gemini returned no completion", ErrMalformedResponse)
	}

	return fmt.Sprintf("%v", result.Candidates[0].Content.Parts[0]), nil
}

// GetModelInfo returns information about the Gemini model.
func (c *GeminiClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            "gemini",
		MaxCompletionTokens: c.maxCompletionTokens,
	}
}
