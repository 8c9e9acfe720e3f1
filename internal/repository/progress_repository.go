// internal/repository/progress_repository.go
package repository

import (
	"context"

	"go_5_study_planner/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *model.ProgressEntry) error
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.ProgressEntry, error)
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, entry *model.ProgressEntry) error {
	return tx.WithContext(ctx).Create(entry).Error
}

func (r *gormProgressRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.ProgressEntry, error) {
	var entries []*model.ProgressEntry
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}
