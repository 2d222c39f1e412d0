package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

// ItineraryConfig carries the knobs of the generation loop. Injected at
// construction so the loop itself holds no mutable state between requests.
type ItineraryConfig struct {
	MaxAttempts    int
	AttemptTimeout time.Duration
	RetryBackoff   time.Duration
	Temperature    float32
	MaxTokens      int
}

func DefaultItineraryConfig() ItineraryConfig {
	return ItineraryConfig{
		MaxAttempts:    5,
		AttemptTimeout: 90 * time.Second,
		RetryBackoff:   0,
		Temperature:    0.7,
		MaxTokens:      4000,
	}
}

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
}

func NewItineraryService(
	client utils.GenerationClientInterface,
	cacheRepo repositories.CachedItineraryRepository,
	config ItineraryConfig,
) ItineraryServiceInterface {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultItineraryConfig().MaxAttempts
	}
	return &ItineraryService{
		client:    client,
		cacheRepo: cacheRepo,
		config:    config,
	}
}

type ItineraryService struct {
	client    utils.GenerationClientInterface
	cacheRepo repositories.CachedItineraryRepository
	config    ItineraryConfig
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, utils.ErrInvalidCity
	}
	if req.Days < 1 {
		return nil, utils.ErrInvalidDayCount
	}

	mustSeeNames := request_models.MustSeeNames(req.MustSees)

	if cached := s.lookupCache(ctx, city, req.Days, mustSeeNames); cached != "" {
		return &response_models.GenerateItineraryResponse{
			Result: cached,
			Days:   ParseItinerary(cached, req.Days),
			Cached: true,
		}, nil
	}

	for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := s.generateOnce(ctx, city, req.Days, mustSeeNames)
		if err != nil {
			log.Printf("itinerary attempt %d failed: %v", attempt, err)
			s.backoff(ctx)
			continue
		}

		candidate = FormatItinerary(candidate, req.Days)

		validation := ValidateItinerary(candidate, req.Days, req.MustSees)
		if !validation.IsValid && len(validation.MissingMustSees) > 0 {
			candidate = InsertMustSees(candidate, validation.MissingMustSees)
			validation = ValidateItinerary(candidate, req.Days, req.MustSees)
			if validation.IsValid {
				log.Printf("inserted missing must-see locations for %s", city)
			}
		}

		if !validation.IsValid {
			log.Printf("itinerary attempt %d failed: %s", attempt, validation.Reason)
			s.backoff(ctx)
			continue
		}

		s.storeCache(ctx, city, req.Days, candidate, mustSeeNames)

		return &response_models.GenerateItineraryResponse{
			Result: candidate,
			Days:   ParseItinerary(candidate, req.Days),
		}, nil
	}

	log.Printf("failed to generate a valid itinerary for %s after %d attempts", city, s.config.MaxAttempts)
	return nil, utils.ErrItineraryGenerationFailed
}

// generateOnce runs a single model call under the per-attempt timeout. A
// timeout expiry surfaces as an error and consumes the attempt like any
// other structural failure.
func (s *ItineraryService) generateOnce(ctx context.Context, city string, numDays int, mustSees []string) (string, error) {
	if s.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.AttemptTimeout)
		defer cancel()
	}

	text, err := s.client.GenerateCompletion(ctx, utils.GenerationRequest{
		SystemPrompt: buildItinerarySystemPrompt(city, numDays, mustSees),
		UserPrompt:   buildItineraryUserPrompt(city, numDays),
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

func (s *ItineraryService) backoff(ctx context.Context) {
	if s.config.RetryBackoff <= 0 {
		return
	}
	select {
	case <-time.After(s.config.RetryBackoff):
	case <-ctx.Done():
	}
}

// lookupCache returns a cached itinerary only when the stored entry covers
// every requested must-see name. Read errors degrade to a miss.
func (s *ItineraryService) lookupCache(ctx context.Context, city string, numDays int, mustSees []string) string {
	cached, err := s.cacheRepo.GetByCityAndDays(ctx, city, numDays)
	if err != nil {
		log.Printf("cached itinerary lookup failed for %s: %v", city, err)
		return ""
	}
	if cached == nil || cached.Itinerary == "" {
		return ""
	}

	stored := make(map[string]bool, len(cached.MustSees))
	for _, name := range cached.MustSees {
		stored[strings.ToLower(name)] = true
	}
	for _, name := range mustSees {
		if !stored[strings.ToLower(name)] {
			return ""
		}
	}
	return cached.Itinerary
}

func (s *ItineraryService) storeCache(ctx context.Context, city string, numDays int, itinerary string, mustSees []string) {
	err := s.cacheRepo.Upsert(ctx, &db_models.CachedItinerary{
		City:      city,
		Days:      numDays,
		Itinerary: itinerary,
		MustSees:  pq.StringArray(mustSees),
	})
	if err != nil {
		log.Printf("failed to cache itinerary for %s: %v", city, err)
		return
	}
	log.Printf("cached itinerary for %s (%d days)", city, numDays)
}

func buildItinerarySystemPrompt(city string, numDays int, mustSees []string) string {
	mustSeesClause := ""
	if len(mustSees) > 0 {
		mustSeesClause = fmt.Sprintf("Must-see locations: %s. These MUST be included in the itinerary, distributed across the days. ", strings.Join(mustSees, ", "))
	}

	return fmt.Sprintf(`You are a knowledgeable travel assistant. Create a detailed %[1]d-day itinerary for %[2]s, focusing on must-see locations and efficient travel. %[3]sProvide SPECIFIC and UNIQUE activities for EVERY time slot (Morning, Afternoon, Evening) for EACH day, including Lunch and Dinner. Do not leave any slot empty or generic. EVERY activity MUST include a specific address. PRIORITIZE including all must-see locations before adding other activities. Format the itinerary EXACTLY as follows for EACH day:

Day X:

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

Use 24-hour times such as 09:00 or 18:30. Repeat this EXACT format for each day, up to Day %[1]d. Ensure that activities are UNIQUE across all days. Do not add any extra text or explanations outside of this format.`, numDays, city, mustSeesClause)
}

func buildItineraryUserPrompt(city string, numDays int) string {
	return fmt.Sprintf("Create a detailed %d-day itinerary for %s with specific activities for every part of each day, including Morning, Afternoon, Evening, Lunch, and Dinner. Generate EXACTLY %d day(s), no more and no less. Remember to include a specific address for EVERY activity. ENSURE ALL must-see locations are included before adding other activities.", numDays, city, numDays)
}
