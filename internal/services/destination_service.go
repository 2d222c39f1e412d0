package services

import (
	"context"
	"log"
	"strings"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/response_models"
	"tripweaver/internal/repositories"
	"tripweaver/pkg/utils"
)

const destinationSearchLimit = 15

type DestinationServiceInterface interface {
	ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error)
	SearchDestinations(ctx context.Context, query string) ([]response_models.DestinationResponse, error)
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	client          utils.GenerationClientInterface
}

func NewDestinationService(destinationRepo repositories.DestinationRepository, client utils.GenerationClientInterface) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		client:          client,
	}
}

func (d *DestinationService) ListDestinations(ctx context.Context) ([]response_models.DestinationResponse, error) {
	destinations, err := d.destinationRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toDestinationResponses(destinations), nil
}

// SearchDestinations embeds the free-text query and ranks destinations by
// vector similarity. An exact name match is tried first so short queries
// like "Paris" never lose to an embedding neighbour.
func (d *DestinationService) SearchDestinations(ctx context.Context, query string) ([]response_models.DestinationResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.ErrInvalidInput
	}

	if exact, err := d.destinationRepo.FindByName(ctx, query); err == nil && exact != nil {
		return toDestinationResponses([]db_models.Destination{*exact}), nil
	}

	vector, err := d.client.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Error embedding destination query: %v", err)
		return nil, utils.ErrDestinationNotFound
	}

	destinations, err := d.destinationRepo.SearchByEmbedding(ctx, vector, destinationSearchLimit)
	if err != nil {
		log.Printf("Error searching destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return toDestinationResponses(destinations), nil
}

func toDestinationResponses(destinations []db_models.Destination) []response_models.DestinationResponse {
	responses := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		responses = append(responses, response_models.DestinationResponse{
			ID:          destination.ID.String(),
			Name:        destination.Name,
			Country:     destination.Country,
			Description: destination.Description,
			ImageURL:    destination.ImageURL,
			Similarity:  destination.Similarity,
		})
	}
	return responses
}
