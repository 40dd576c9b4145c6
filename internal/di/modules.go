package di

import (
	"log"
	"time"

	"querygen-ai/config"
	"querygen-ai/internal/apis/handlers"
	"querygen-ai/internal/constants"
	"querygen-ai/internal/services"
	"querygen-ai/pkg/llm"

	"go.uber.org/dig"
)

var DiContainer *dig.Container

func Initialize() {
	DiContainer = dig.New()

	// Add LLM Manager
	if err := DiContainer.Provide(func() *llm.Manager {
		manager := llm.NewManager()

		switch config.Env.DefaultLLMClient {
		case constants.OpenAI:
			err := manager.RegisterClient(constants.OpenAI, llm.Config{
				Provider:            constants.OpenAI,
				Model:               config.Env.OpenAIModel,
				APIKey:              config.Env.OpenAIAPIKey,
				MaxCompletionTokens: config.Env.OpenAIMaxCompletionTokens,
				Temperature:         config.Env.OpenAITemperature,
				ExtractionName:      constants.QueryToolName,
				ExtractionSchema:    constants.GetQueryExtractionSchema(constants.OpenAI),
			})
			if err != nil {
				log.Printf("Warning: Failed to register OpenAI client: %v", err)
			}
		case constants.Gemini:
			err := manager.RegisterClient(constants.Gemini, llm.Config{
				Provider:            constants.Gemini,
				Model:               config.Env.GeminiModel,
				APIKey:              config.Env.GeminiAPIKey,
				MaxCompletionTokens: config.Env.GeminiMaxCompletionTokens,
				Temperature:         config.Env.GeminiTemperature,
				ExtractionName:      constants.QueryToolName,
				ExtractionSchema:    constants.GetQueryExtractionSchema(constants.Gemini),
			})
			if err != nil {
				log.Printf("Warning: Failed to register Gemini client: %v", err)
			}
		}
		return manager
	}); err != nil {
		log.Fatalf("Failed to provide LLM manager: %v", err)
	}

	// Provide query service
	if err := DiContainer.Provide(func(llmManager *llm.Manager) services.QueryService {
		llmClient, err := llmManager.GetClient(config.Env.DefaultLLMClient)
		if err != nil {
			log.Fatalf("Failed to get default LLM client: %v", err)
		}

		return services.NewQueryService(
			llmClient,
			referenceDateProvider(),
			config.Env.LLMCallTimeout,
			config.Env.LLMMaxRetries,
		)
	}); err != nil {
		log.Fatalf("Failed to provide query service: %v", err)
	}

	// Provide handlers
	if err := DiContainer.Provide(func(queryService services.QueryService) *handlers.QueryHandler {
		return handlers.NewQueryHandler(queryService)
	}); err != nil {
		log.Fatalf("Failed to provide query handler: %v", err)
	}
}

// referenceDateProvider resolves the date anchor injected into the
// extraction prompt: a pinned date when configured, the wall clock
// otherwise.
func referenceDateProvider() func() time.Time {
	if config.Env.ReferenceDate == "" {
		return time.Now
	}
	pinned, err := time.Parse("2006-01-02", config.Env.ReferenceDate)
	if err != nil {
		log.Printf("Warning: invalid reference date %q, falling back to wall clock: %v", config.Env.ReferenceDate, err)
		return time.Now
	}
	return func() time.Time { return pinned }
}

// GetQueryHandler retrieves the QueryHandler from the DI container
func GetQueryHandler() (*handlers.QueryHandler, error) {
	var handler *handlers.QueryHandler
	err := DiContainer.Invoke(func(h *handlers.QueryHandler) {
		handler = h
	})
	if err != nil {
		return nil, err
	}
	return handler, nil
}
