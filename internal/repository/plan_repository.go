// internal/repository/plan_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_study_planner/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository interface {
	// Upsert は学習者のプランを丸ごと置き換えます (学習者につき常に1件)
	Upsert(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.StudyPlan, error)
	Save(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error
}

type gormPlanRepository struct{}

func NewGormPlanRepository() PlanRepository {
	return &gormPlanRepository{}
}

func (r *gormPlanRepository) Upsert(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error {
	// 旧プランがあれば物理削除してから作成する。
	// プランは完全な上書きであり、論理削除で履歴を残す意味がないため。
	if err := tx.WithContext(ctx).
		Where("learner_id = ?", plan.LearnerID).
		Delete(&model.StudyPlan{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Create(plan).Error
}

func (r *gormPlanRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&plan)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &plan, nil
}

func (r *gormPlanRepository) Save(ctx context.Context, tx *gorm.DB, plan *model.StudyPlan) error {
	// セッションの完了フラグ更新用。主キーに基づくUpdate。
	result := tx.WithContext(ctx).Save(plan)
	return result.Error
}
