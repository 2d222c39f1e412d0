package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

type SavedItineraryServiceInterface interface {
	SaveItinerary(ctx context.Context, accountID uuid.UUID, request request_models.SaveItineraryRequest) (*response_models.SavedItineraryResponse, error)
	ListMyItineraries(ctx context.Context, accountID uuid.UUID) ([]response_models.SavedItinerarySummary, error)
	GetItinerary(ctx context.Context, accountID uuid.UUID, itineraryID string) (*response_models.SavedItineraryResponse, error)
	DeleteItinerary(ctx context.Context, accountID uuid.UUID, itineraryID string) error
	SetPublished(ctx context.Context, accountID uuid.UUID, itineraryID string, published bool) error
	ListPublished(ctx context.Context) ([]response_models.SavedItinerarySummary, error)
	Upvote(ctx context.Context, itineraryID string) error
}

type SavedItineraryService struct {
	itineraryRepo repositories.SavedItineraryRepository
}

func NewSavedItineraryService(itineraryRepo repositories.SavedItineraryRepository) SavedItineraryServiceInterface {
	return &SavedItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *SavedItineraryService) SaveItinerary(ctx context.Context, accountID uuid.UUID, request request_models.SaveItineraryRequest) (*response_models.SavedItineraryResponse, error) {
	days, err := normalizeRawContent(request.Content, request.Days)
	if err != nil {
		return nil, err
	}
	if request.Days <= 0 {
		request.Days = len(days)
	}

	encoded, err := json.Marshal(days)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itinerary := &db_models.SavedItinerary{
		AccountID: accountID,
		Title:     request.Title,
		City:      request.City,
		Days:      request.Days,
		Content:   string(encoded),
	}

	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toSavedItineraryResponse(itinerary, days), nil
}

func (s *SavedItineraryService) ListMyItineraries(ctx context.Context, accountID uuid.UUID) ([]response_models.SavedItinerarySummary, error) {
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSummaries(itineraries), nil
}

// GetItinerary returns a saved itinerary to its owner, or to anyone once it
// is published.
func (s *SavedItineraryService) GetItinerary(ctx context.Context, accountID uuid.UUID, itineraryID string) (*response_models.SavedItineraryResponse, error) {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.AccountID != accountID && !itinerary.Published {
		return nil, utils.ErrForbidden
	}

	days, err := NormalizeItinerary(decodeContent(itinerary.Content), itinerary.Days)
	if err != nil {
		return nil, err
	}

	return toSavedItineraryResponse(itinerary, days), nil
}

func (s *SavedItineraryService) DeleteItinerary(ctx context.Context, accountID uuid.UUID, itineraryID string) error {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if itinerary.AccountID != accountID {
		return utils.ErrForbidden
	}

	if err := s.itineraryRepo.Delete(ctx, itineraryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SavedItineraryService) SetPublished(ctx context.Context, accountID uuid.UUID, itineraryID string, published bool) error {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil {
		return utils.ErrItineraryNotFound
	}
	if itinerary.AccountID != accountID {
		return utils.ErrForbidden
	}

	if err := s.itineraryRepo.SetPublished(ctx, itineraryID, published); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SavedItineraryService) ListPublished(ctx context.Context) ([]response_models.SavedItinerarySummary, error) {
	itineraries, err := s.itineraryRepo.ListPublished(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSummaries(itineraries), nil
}

func (s *SavedItineraryService) Upvote(ctx context.Context, itineraryID string) error {
	itinerary, err := s.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if itinerary == nil || !itinerary.Published {
		return utils.ErrItineraryNotFound
	}

	if err := s.itineraryRepo.IncrementUpvotes(ctx, itineraryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// normalizeRawContent funnels the request body's content through the shared
// grammar, whether it arrived as generated text or as structured days.
func normalizeRawContent(raw json.RawMessage, numDays int) ([]response_models.ItineraryDay, error) {
	var content interface{}
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, utils.ErrInvalidInput
	}
	return NormalizeItinerary(content, numDays)
}

// decodeContent turns a stored jsonb column back into a shape the
// normalizer accepts. Rows predating the structured format hold plain text.
func decodeContent(stored string) interface{} {
	var content interface{}
	if err := json.Unmarshal([]byte(stored), &content); err != nil {
		log.Printf("stored itinerary content is not JSON, treating as raw text")
		return stored
	}
	if text, ok := content.(string); ok {
		return text
	}
	return content
}

func toSavedItineraryResponse(itinerary *db_models.SavedItinerary, days []response_models.ItineraryDay) *response_models.SavedItineraryResponse {
	return &response_models.SavedItineraryResponse{
		ID:        itinerary.ID.String(),
		Title:     itinerary.Title,
		City:      itinerary.City,
		Days:      days,
		Published: itinerary.Published,
		Upvotes:   itinerary.Upvotes,
	}
}

func toSummaries(itineraries []db_models.SavedItinerary) []response_models.SavedItinerarySummary {
	summaries := make([]response_models.SavedItinerarySummary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		summaries = append(summaries, response_models.SavedItinerarySummary{
			ID:        itinerary.ID.String(),
			Title:     itinerary.Title,
			City:      itinerary.City,
			Days:      itinerary.Days,
			Published: itinerary.Published,
			Upvotes:   itinerary.Upvotes,
			CreatedAt: itinerary.CreatedAt,
		})
	}
	return summaries
}
