package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/memcache"
	"tripweaver/pkg/utils"
)

const activityNameCacheTTL = 24 * time.Hour

// StreamItineraryServiceInterface generates itineraries one day at a time,
// handing each day to the caller as soon as it completes. Unlike the
// whole-itinerary path there is no validation or repair: each day is trusted
// and concatenated.
type StreamItineraryServiceInterface interface {
	StreamItinerary(ctx context.Context, city string, numDays int, emit func(response_models.StreamedDay) error) error
	GetCachedActivityNames(ctx context.Context, city string) ([]string, error)
}

func NewStreamItineraryService(
	client utils.GenerationClientInterface,
	activityRepo repositories.CachedActivityRepository,
	nameStore mem.ActivityNameStore,
	config ItineraryConfig,
) StreamItineraryServiceInterface {
	return &StreamItineraryService{
		client:       client,
		activityRepo: activityRepo,
		nameStore:    nameStore,
		config:       config,
	}
}

type StreamItineraryService struct {
	client       utils.GenerationClientInterface
	activityRepo repositories.CachedActivityRepository
	nameStore    mem.ActivityNameStore
	config       ItineraryConfig
}

func (s *StreamItineraryService) StreamItinerary(ctx context.Context, city string, numDays int, emit func(response_models.StreamedDay) error) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return utils.ErrInvalidCity
	}
	if numDays < 1 {
		return utils.ErrInvalidDayCount
	}

	usedNames := s.loadUsedNames(ctx, city)

	for day := 1; day <= numDays; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := s.generateDay(ctx, city, day, usedNames)
		if err != nil {
			return fmt.Errorf("failed to generate day %d: %w", day, err)
		}

		if err := emit(response_models.StreamedDay{Day: day, Text: text}); err != nil {
			return err
		}

		for _, name := range ExtractActivityNames(text) {
			usedNames = appendUnique(usedNames, name)
		}
	}

	s.persistUsedNames(ctx, city, usedNames)
	return nil
}

// GetCachedActivityNames serves the per-city name set, preferring the
// in-process cache and falling back to the database.
func (s *StreamItineraryService) GetCachedActivityNames(ctx context.Context, city string) ([]string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrInvalidCity
	}

	if names, ok := s.nameStore.Get(city); ok {
		return names, nil
	}

	cached, err := s.activityRepo.GetByCity(ctx, city)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cached == nil {
		return nil, nil
	}

	s.nameStore.Add(city, cached.Activities, activityNameCacheTTL)
	return cached.Activities, nil
}

func (s *StreamItineraryService) generateDay(ctx context.Context, city string, day int, usedNames []string) (string, error) {
	if s.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.AttemptTimeout)
		defer cancel()
	}

	text, err := s.client.GenerateCompletion(ctx, utils.GenerationRequest{
		SystemPrompt: buildDaySystemPrompt(city, day, usedNames),
		UserPrompt:   fmt.Sprintf("Create Day %d of the itinerary for %s. Output ONLY that single day, starting with \"Day %d:\".", day, city, day),
		Temperature:  s.config.Temperature,
		MaxTokens:    s.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("generation returned empty text")
	}
	return text, nil
}

// loadUsedNames seeds repeat avoidance from the in-process cache, falling
// back to the cached_activity_names table. Errors degrade to an empty set.
func (s *StreamItineraryService) loadUsedNames(ctx context.Context, city string) []string {
	if names, ok := s.nameStore.Get(city); ok {
		return names
	}

	cached, err := s.activityRepo.GetByCity(ctx, city)
	if err != nil {
		log.Printf("cached activity lookup failed for %s: %v", city, err)
		return nil
	}
	if cached == nil {
		return nil
	}

	s.nameStore.Add(city, cached.Activities, activityNameCacheTTL)
	return cached.Activities
}

// persistUsedNames writes the accumulated set through the in-process cache
// to the database. Best effort: a failed write only logs.
func (s *StreamItineraryService) persistUsedNames(ctx context.Context, city string, names []string) {
	if len(names) == 0 {
		return
	}

	s.nameStore.Add(city, names, activityNameCacheTTL)

	err := s.activityRepo.Upsert(ctx, &db_models.CachedActivityNames{
		City:       city,
		Activities: pq.StringArray(names),
	})
	if err != nil {
		log.Printf("failed to cache activity names for %s: %v", city, err)
	}
}

func appendUnique(names []string, name string) []string {
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return names
		}
	}
	return append(names, name)
}

func buildDaySystemPrompt(city string, day int, usedNames []string) string {
	avoidClause := ""
	if len(usedNames) > 0 {
		avoidClause = fmt.Sprintf(" Do NOT reuse any of these activities: %s.", strings.Join(usedNames, ", "))
	}

	return fmt.Sprintf(`You are a knowledgeable travel assistant. Create Day %d of a travel itinerary for %s.%s Provide SPECIFIC and UNIQUE activities for every time slot (Morning, Afternoon, Evening), including Lunch and Dinner. EVERY activity MUST include a specific address. Use 24-hour times such as 09:00 or 18:30. Format the day EXACTLY as follows:

Day %d:

Morning:
1. [Specific Attraction Name] (Start Time – End Time)

[Brief description - 1-2 sentences]
Address: [Specific address for the attraction]
Transportation: [Specific transportation information]

2. [Next Specific Attraction] (Start Time – End Time)

[Brief description - 1-2 sentences]
Address: [Specific address for the attraction]
Transportation: [Specific transportation information]

Lunch (Start Time – End Time):
[Specific Restaurant Name]

[Brief description of cuisine - 1 sentence]
Address: [Specific address for the restaurant]

Afternoon:
3. [Specific Attraction Name] (Start Time – End Time)

[Brief description - 1-2 sentences]
Address: [Specific address for the attraction]
Transportation: [Specific transportation information]

4. [Next Specific Attraction] (Start Time – End Time)

[Brief description - 1-2 sentences]
Address: [Specific address for the attraction]
Transportation: [Specific transportation information]

Evening:
5. [Specific Attraction or Activity] (Start Time – End Time)

[Brief description - 1-2 sentences]
Address: [Specific address for the attraction/activity]
Transportation: [Specific transportation information]

Dinner (Start Time – End Time):
[Specific Restaurant Name or Dining Area]

[Brief description of cuisine or dining experience - 1 sentence]
Address: [Specific address for the restaurant/dining area]

Do not add any extra text or explanations outside of this format.`, day, city, avoidClause, day)
}
