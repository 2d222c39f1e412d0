package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripweaver/internal/models/db_models"
)

type SavedItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.SavedItinerary) error
	ListByAccount(ctx context.Context, accountID string) ([]db_models.SavedItinerary, error)
	GetByID(ctx context.Context, id string) (*db_models.SavedItinerary, error)
	Delete(ctx context.Context, id string) error
	SetPublished(ctx context.Context, id string, published bool) error
	ListPublished(ctx context.Context) ([]db_models.SavedItinerary, error)
	IncrementUpvotes(ctx context.Context, id string) error
}

type savedItineraryRepository struct {
	db *gorm.DB
}

func NewSavedItineraryRepository(db *gorm.DB) SavedItineraryRepository {
	return &savedItineraryRepository{db: db}
}

func (r *savedItineraryRepository) Insert(ctx context.Context, itinerary *db_models.SavedItinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *savedItineraryRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.SavedItinerary, error) {
	var itineraries []db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *savedItineraryRepository) GetByID(ctx context.Context, id string) (*db_models.SavedItinerary, error) {
	var itinerary db_models.SavedItinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *savedItineraryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.SavedItinerary{}, "id = ?", id).Error
}

func (r *savedItineraryRepository) SetPublished(ctx context.Context, id string, published bool) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SavedItinerary{}).
		Where("id = ?", id).
		Update("published", published).Error
}

func (r *savedItineraryRepository) ListPublished(ctx context.Context) ([]db_models.SavedItinerary, error) {
	var itineraries []db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("upvotes DESC, created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *savedItineraryRepository) IncrementUpvotes(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.SavedItinerary{}).
		Where("id = ? AND published = ?", id, true).
		Update("upvotes", gorm.Expr("upvotes + 1")).Error
}
