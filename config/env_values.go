package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"querygen-ai/internal/constants"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker bool
	Port     string

	// LLM configs
	DefaultLLMClient          string
	OpenAIAPIKey              string
	OpenAIModel               string
	OpenAIMaxCompletionTokens int
	OpenAITemperature         float32
	GeminiAPIKey              string
	GeminiModel               string
	GeminiMaxCompletionTokens int
	GeminiTemperature         float32

	// Pipeline configs
	LLMCallTimeout time.Duration
	LLMMaxRetries  int
	// ReferenceDate pins the "current date" used to resolve relative date
	// expressions. Empty means the wall clock at request time.
	ReferenceDate string
}

var Env Environment

// LoadEnv loads environment variables from .env file if present
// and validates required variables
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "3000")

	// LLM configs
	Env.DefaultLLMClient = getEnvWithDefault("QUERYGEN_LLM_CLIENT", constants.OpenAI)
	Env.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	Env.OpenAIModel = getEnvWithDefault("QUERYGEN_OPENAI_MODEL", constants.OpenAIModel)
	Env.OpenAIMaxCompletionTokens = getIntEnvWithDefault("QUERYGEN_OPENAI_MAX_COMPLETION_TOKENS", constants.OpenAIMaxCompletionTokens)
	Env.OpenAITemperature = float32(getIntEnvWithDefault("QUERYGEN_OPENAI_TEMPERATURE", constants.OpenAITemperature))
	Env.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	Env.GeminiModel = getEnvWithDefault("QUERYGEN_GEMINI_MODEL", constants.GeminiModel)
	Env.GeminiMaxCompletionTokens = getIntEnvWithDefault("QUERYGEN_GEMINI_MAX_COMPLETION_TOKENS", constants.GeminiMaxCompletionTokens)
	Env.GeminiTemperature = float32(getIntEnvWithDefault("QUERYGEN_GEMINI_TEMPERATURE", constants.GeminiTemperature))

	// Pipeline configs
	Env.LLMCallTimeout = getDurationEnvWithDefault("QUERYGEN_LLM_CALL_TIMEOUT", 30*time.Second)
	Env.LLMMaxRetries = getIntEnvWithDefault("QUERYGEN_LLM_MAX_RETRIES", 2)
	Env.ReferenceDate = os.Getenv("QUERYGEN_REFERENCE_DATE")

	return validateConfig()
}

// Helper functions to get environment variables with defaults and validation
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func getDurationEnvWithDefault(key string, defaultValue time.Duration) time.Duration {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid duration for %s, using default: %v\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func validateConfig() error {
	switch Env.DefaultLLMClient {
	case constants.OpenAI:
		if Env.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when QUERYGEN_LLM_CLIENT is %s", constants.OpenAI)
		}
	case constants.Gemini:
		if Env.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when QUERYGEN_LLM_CLIENT is %s", constants.Gemini)
		}
	default:
		return fmt.Errorf("unsupported LLM client: %s", Env.DefaultLLMClient)
	}

	if Env.ReferenceDate != "" {
		if _, err := time.Parse("2006-01-02", Env.ReferenceDate); err != nil {
			return fmt.Errorf("QUERYGEN_REFERENCE_DATE must be YYYY-MM-DD: %v", err)
		}
	}

	if Env.LLMMaxRetries < 0 {
		return fmt.Errorf("QUERYGEN_LLM_MAX_RETRIES must not be negative, got: %d", Env.LLMMaxRetries)
	}

	return nil
}
