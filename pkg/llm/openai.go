package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client              *openai.Client
	model               string
	maxCompletionTokens int
	temperature         float32
	extractionName      string
	extractionSchema    json.RawMessage
}

func NewOpenAIClient(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := openai.NewClient(config.APIKey)
	model := config.Model
	if model == "" {
		model = openai.GPT4o
	}

	schema, ok := config.ExtractionSchema.(json.RawMessage)
	if !ok {
		if raw, isString := config.ExtractionSchema.(string); isString {
			schema = json.RawMessage(raw)
		} else {
			return nil, fmt.Errorf("OpenAI extraction schema must be a JSON document")
		}
	}

	return &OpenAIClient{
		client:              client,
		model:               model,
		maxCompletionTokens: config.MaxCompletionTokens,
		temperature:         config.Temperature,
		extractionName:      config.ExtractionName,
		extractionSchema:    schema,
	}, nil
}

func (c *OpenAIClient) ExtractStructured(ctx context.Context, systemPrompt, userText string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
		MaxCompletionTokens: c.maxCompletionTokens,
		Temperature:         c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:        c.extractionName,
				Description: "Structured query intent constrained to the assistant metrics schema",
				Schema:      c.extractionSchema,
				Strict:      true,
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("ExtractStructured -> OpenAI API error: %v", err)
		return "", fmt.Errorf("%w: openai: %v", ErrServiceUnavailable, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: openai returned no structured content", ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
		MaxCompletionTokens: c.maxCompletionTokens,
		Temperature:         c.temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Printf("Complete -> OpenAI API error: %v", err)
		return "", fmt.Errorf("%w: openai: %v", ErrServiceUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: openai returned no completion", ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) GetModelInfo() ModelInfo {
	return ModelInfo{
		Name:                c.model,
		Provider:            "openai",
		MaxCompletionTokens: c.maxCompletionTokens,
	}
}
