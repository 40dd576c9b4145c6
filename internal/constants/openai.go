package constants

const (
	OpenAIModel               = "gpt-4o"
	OpenAITemperature         = 1
	OpenAIMaxCompletionTokens = 3072
)
