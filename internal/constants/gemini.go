package constants

import "github.com/google/generative-ai-go/genai"

const (
	GeminiModel               = "gemini-2.0-flash"
	GeminiTemperature         = 1
	GeminiMaxCompletionTokens = 3072
)

var queryColumnEnum = []string{
	"USER_ID", "ASSISTANT_NAME", "ASSISTANT_ID", "QUESTION", "ANSWER", "FEEDBACK", "DATE",
}

// Gemini response schema for structured query extraction. The genai schema
// language has no union type, so condition values are declared as strings;
// integer literals arrive as digit strings and still render correctly in
// the generated SQL.
var GeminiQueryExtractionSchema = &genai.Schema{
	Type:     genai.TypeObject,
	Required: []string{"table_name", "columns", "conditions", "aggregate", "rank_type", "order_by"},
	Properties: map[string]*genai.Schema{
		"table_name": {
			Type: genai.TypeString,
			Enum: []string{"ASSISTANT_METRICS"},
		},
		"columns": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeString,
				Enum: queryColumnEnum,
			},
			Description: "Columns to select, in the order they should appear.",
		},
		"conditions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type:     genai.TypeObject,
				Required: []string{"column", "operator", "value"},
				Properties: map[string]*genai.Schema{
					"column": {
						Type: genai.TypeString,
						Enum: queryColumnEnum,
					},
					"operator": {
						Type: genai.TypeString,
						Enum: []string{"=", ">", "<", "<=", ">=", "!="},
					},
					"value": {
						Type:        genai.TypeString,
						Description: "Literal value to compare against, or the name of another column.",
					},
				},
			},
			Description: "Filter clauses combined with AND.",
		},
		"aggregate": {
			Type: genai.TypeString,
			Enum: []string{"none", "count", "sum", "avg", "min", "max"},
		},
		"rank_type": {
			Type: genai.TypeString,
			Enum: []string{"none", "rank", "dense_rank"},
		},
		"order_by": {
			Type: genai.TypeString,
			Enum: []string{"asc", "desc"},
		},
	},
}
