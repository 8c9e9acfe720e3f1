// internal/repository/learner_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"go_5_study_planner/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearnerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, learner *model.Learner) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error)
	Update(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, updates map[string]interface{}) error
}

type gormLearnerRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormLearnerRepository() LearnerRepository {
	return &gormLearnerRepository{}
}

func (r *gormLearnerRepository) Create(ctx context.Context, tx *gorm.DB, learner *model.Learner) error {
	result := tx.WithContext(ctx).Create(learner)
	if result.Error != nil {
		// ユニーク制約違反は Conflict として返す
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) || strings.Contains(result.Error.Error(), "duplicate key") {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormLearnerRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.Learner, error) {
	var learner model.Learner
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &learner, nil
}

func (r *gormLearnerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Learner, error) {
	var learner model.Learner
	result := db.WithContext(ctx).Where("email = ?", email).First(&learner)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &learner, nil
}

func (r *gormLearnerRepository) Update(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Learner{}).Where("learner_id = ?", learnerID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
