// internal/repository/subject_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_study_planner/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, tx *gorm.DB, subject *model.Subject) error
	FindByID(ctx context.Context, db *gorm.DB, learnerID, subjectID uuid.UUID) (*model.Subject, error)
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Subject, error)
	CountByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (int64, error)
	CheckNameExists(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, tx *gorm.DB, learnerID, subjectID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID, subjectID uuid.UUID) error
}

type gormSubjectRepository struct{}

func NewGormSubjectRepository() SubjectRepository {
	return &gormSubjectRepository{}
}

func (r *gormSubjectRepository) Create(ctx context.Context, tx *gorm.DB, subject *model.Subject) error {
	result := tx.WithContext(ctx).Create(subject)
	return result.Error
}

func (r *gormSubjectRepository) FindByID(ctx context.Context, db *gorm.DB, learnerID, subjectID uuid.UUID) (*model.Subject, error) {
	var subject model.Subject
	result := db.WithContext(ctx).Where("learner_id = ? AND subject_id = ?", learnerID, subjectID).First(&subject)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &subject, nil
}

func (r *gormSubjectRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Subject, error) {
	var subjects []*model.Subject
	// 登録順で返す。優先度順の並べ替えはプランナーの責務。
	result := db.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at ASC").
		Find(&subjects)
	if result.Error != nil {
		return nil, result.Error
	}
	return subjects, nil
}

func (r *gormSubjectRepository) CountByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Subject{}).Where("learner_id = ?", learnerID).Count(&count)
	return count, result.Error
}

func (r *gormSubjectRepository) CheckNameExists(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(&model.Subject{}).
		Where("learner_id = ? AND name = ?", learnerID, name)
	if excludeID != nil {
		query = query.Where("subject_id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormSubjectRepository) Update(ctx context.Context, tx *gorm.DB, learnerID, subjectID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Subject{}).
		Where("learner_id = ? AND subject_id = ?", learnerID, subjectID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSubjectRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, subjectID uuid.UUID) error {
	// 論理削除
	result := tx.WithContext(ctx).
		Where("learner_id = ? AND subject_id = ?", learnerID, subjectID).
		Delete(&model.Subject{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
