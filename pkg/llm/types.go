package llm

import (
	"context"
)

// Client defines the two generation capabilities the pipeline depends on:
// structured extraction against a fixed schema and free-text completion.
// Providers are swappable behind this interface.
type Client interface {
	// ExtractStructured sends the system prompt and user text with the
	// configured extraction schema attached and returns the raw JSON
	// document emitted by the provider.
	ExtractStructured(ctx context.Context, systemPrompt, userText string) (string, error)
	// Complete sends a single instruction prompt and returns the free-text
	// completion as-is.
	Complete(ctx context.Context, prompt string) (string, error)
	GetModelInfo() ModelInfo
}

// ModelInfo contains information about the LLM model
type ModelInfo struct {
	Name                string
	Provider            string
	MaxCompletionTokens int
}

// Config holds configuration for LLM clients
type Config struct {
	Provider            string
	Model               string
	APIKey              string
	MaxCompletionTokens int
	Temperature         float32

	// ExtractionName labels the structured output schema for providers
	// that require a named schema (OpenAI).
	ExtractionName string
	// ExtractionSchema is provider-specific: json.RawMessage for OpenAI,
	// *genai.Schema for Gemini.
	ExtractionSchema any
}
