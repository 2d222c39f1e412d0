package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripweaver/internal/models/db_models"
)

type CachedItineraryRepository interface {
	GetByCityAndDays(ctx context.Context, city string, days int) (*db_models.CachedItinerary, error)
	Upsert(ctx context.Context, cached *db_models.CachedItinerary) error
}

type cachedItineraryRepository struct {
	db *gorm.DB
}

func NewCachedItineraryRepository(db *gorm.DB) CachedItineraryRepository {
	return &cachedItineraryRepository{db: db}
}

func (r *cachedItineraryRepository) GetByCityAndDays(ctx context.Context, city string, days int) (*db_models.CachedItinerary, error) {
	var cached db_models.CachedItinerary
	err := r.db.WithContext(ctx).First(&cached, "city = ? AND days = ?", city, days).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cached, nil
}

// Upsert writes one itinerary per (city, days); the last writer wins when
// concurrent generations race on the same key.
func (r *cachedItineraryRepository) Upsert(ctx context.Context, cached *db_models.CachedItinerary) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city"}, {Name: "days"}},
		DoUpdates: clause.AssignmentColumns([]string{"itinerary", "must_sees", "updated_at"}),
	}).Create(cached).Error
}
