package itinerary_fx

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripweaver/internal/api/controllers"
	"tripweaver/internal/repositories"
	"tripweaver/internal/services"
	mem "tripweaver/pkg/memcache"
	"tripweaver/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerationClient,
	provideItineraryConfig,
	provideCachedItineraryRepo,
	provideCachedActivityRepo,
	provideItineraryService,
	provideStreamItineraryService,
	provideItineraryController)

// GenerationConfig holds configuration for generation clients
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a generation client based on environment variables
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	return utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
}

func provideItineraryConfig() services.ItineraryConfig {
	config := services.DefaultItineraryConfig()

	if v, err := strconv.Atoi(getEnvWithDefault("ITINERARY_MAX_ATTEMPTS", "")); err == nil && v > 0 {
		config.MaxAttempts = v
	}
	if v, err := strconv.Atoi(getEnvWithDefault("ITINERARY_ATTEMPT_TIMEOUT_SECONDS", "")); err == nil && v > 0 {
		config.AttemptTimeout = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(getEnvWithDefault("ITINERARY_RETRY_BACKOFF_MS", "")); err == nil && v > 0 {
		config.RetryBackoff = time.Duration(v) * time.Millisecond
	}

	return config
}

func provideCachedItineraryRepo(db *gorm.DB) repositories.CachedItineraryRepository {
	return repositories.NewCachedItineraryRepository(db)
}

func provideCachedActivityRepo(db *gorm.DB) repositories.CachedActivityRepository {
	return repositories.NewCachedActivityRepository(db)
}

func provideItineraryService(
	client utils.GenerationClientInterface,
	cacheRepo repositories.CachedItineraryRepository,
	config services.ItineraryConfig,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, cacheRepo, config)
}

func provideStreamItineraryService(
	client utils.GenerationClientInterface,
	activityRepo repositories.CachedActivityRepository,
	nameStore mem.ActivityNameStore,
	config services.ItineraryConfig,
) services.StreamItineraryServiceInterface {
	return services.NewStreamItineraryService(client, activityRepo, nameStore, config)
}

func provideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	streamService services.StreamItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, streamService)
}

// getGenerationConfig reads configuration from environment variables
func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
