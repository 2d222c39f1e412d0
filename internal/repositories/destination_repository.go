package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
)

type DestinationRepository interface {
	Insert(ctx context.Context, destination *db_models.Destination) error
	List(ctx context.Context) ([]db_models.Destination, error)
	FindByName(ctx context.Context, name string) (*db_models.Destination, error)
	SearchByEmbedding(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Insert(ctx context.Context, destination *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) List(ctx context.Context) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).Order("name ASC").Find(&destinations).Error
	if err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindByName(ctx context.Context, name string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) SearchByEmbedding(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Destination, error) {
	var results []db_models.Destination

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM destinations
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.WithContext(ctx).Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
