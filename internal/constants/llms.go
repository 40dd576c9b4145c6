package constants

import "encoding/json"

const (
	OpenAI = "openai"
	Gemini = "gemini"
)

// QueryToolName labels the structured extraction schema; it plays the role
// of the query function the extraction prompt refers to.
const QueryToolName = "query"

// GetQueryExtractionSchema returns the provider-specific schema descriptor
// that constrains structured extraction to the Query shape.
func GetQueryExtractionSchema(provider string) any {
	switch provider {
	case Gemini:
		return GeminiQueryExtractionSchema
	default:
		return json.RawMessage(OpenAIQueryExtractionSchema)
	}
}
