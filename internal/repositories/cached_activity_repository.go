package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripweaver/internal/models/db_models"
)

type CachedActivityRepository interface {
	GetByCity(ctx context.Context, city string) (*db_models.CachedActivityNames, error)
	Upsert(ctx context.Context, cached *db_models.CachedActivityNames) error
}

type cachedActivityRepository struct {
	db *gorm.DB
}

func NewCachedActivityRepository(db *gorm.DB) CachedActivityRepository {
	return &cachedActivityRepository{db: db}
}

func (r *cachedActivityRepository) GetByCity(ctx context.Context, city string) (*db_models.CachedActivityNames, error) {
	var cached db_models.CachedActivityNames
	err := r.db.WithContext(ctx).First(&cached, "city = ?", city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cached, nil
}

func (r *cachedActivityRepository) Upsert(ctx context.Context, cached *db_models.CachedActivityNames) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "city"}},
		DoUpdates: clause.AssignmentColumns([]string{"activities", "updated_at"}),
	}).Create(cached).Error
}
