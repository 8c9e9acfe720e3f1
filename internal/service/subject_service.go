// internal/service/subject_service.go
package service

import (
	"context"
	"errors"

	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 科目に自動で割り当てる表示色のパレット
var subjectColors = []string{
	"#6366F1", "#8B5CF6", "#EC4899", "#F59E0B",
	"#10B981", "#3B82F6", "#EF4444", "#14B8A6",
}

type SubjectService interface {
	CreateSubject(ctx context.Context, learnerID uuid.UUID, req *model.PostSubjectRequest) (*model.Subject, error)
	GetSubject(ctx context.Context, learnerID, subjectID uuid.UUID) (*model.Subject, error)
	ListSubjects(ctx context.Context, learnerID uuid.UUID) ([]*model.Subject, error)
	UpdateSubject(ctx context.Context, learnerID, subjectID uuid.UUID, req *model.PatchSubjectRequest) (*model.Subject, error)
	DeleteSubject(ctx context.Context, learnerID, subjectID uuid.UUID) error
	UpdateConfidence(ctx context.Context, learnerID uuid.UUID, req *model.UpdateConfidenceRequest) error
	GetProgressHistory(ctx context.Context, learnerID uuid.UUID) ([]*model.ProgressEntry, error)
}

type subjectService struct {
	db           *gorm.DB
	subjectRepo  repository.SubjectRepository
	progressRepo repository.ProgressRepository
}

func NewSubjectService(db *gorm.DB, subjectRepo repository.SubjectRepository, progressRepo repository.ProgressRepository) SubjectService {
	return &subjectService{
		db:           db,
		subjectRepo:  subjectRepo,
		progressRepo: progressRepo,
	}
}

func (s *subjectService) CreateSubject(ctx context.Context, learnerID uuid.UUID, req *model.PostSubjectRequest) (*model.Subject, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	var created *model.Subject
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同名科目の重複チェック
		exists, err := s.subjectRepo.CheckNameExists(ctx, tx, learnerID, req.Name, nil)
		if err != nil {
			logger.Error("Error checking subject name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_SUBJECT", "同じ名前の科目が既に登録されています。", "name", model.ErrConflict)
		}

		// 既存の科目数から表示色を決める
		count, err := s.subjectRepo.CountByLearner(ctx, tx, learnerID)
		if err != nil {
			logger.Error("Error counting subjects", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		subject := &model.Subject{
			SubjectID:       uuid.New(),
			LearnerID:       learnerID,
			Name:            req.Name,
			Credits:         req.Credits,
			ConfidenceLevel: req.ConfidenceLevel,
			WeakAreas:       req.WeakAreas,
			StrongAreas:     req.StrongAreas,
			Color:           subjectColors[int(count)%len(subjectColors)],
		}
		if err := s.subjectRepo.Create(ctx, tx, subject); err != nil {
			logger.Error("Error creating subject", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "科目の作成に失敗しました。", "", err)
		}

		created = subject
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Subject created", "subject_id", created.SubjectID, "name", created.Name)
	return created, nil
}

func (s *subjectService) GetSubject(ctx context.Context, learnerID, subjectID uuid.UUID) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindByID(ctx, s.db, learnerID, subjectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return subject, nil
}

func (s *subjectService) ListSubjects(ctx context.Context, learnerID uuid.UUID) ([]*model.Subject, error) {
	subjects, err := s.subjectRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing subjects", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "科目一覧の取得に失敗しました。", "", err)
	}
	return subjects, nil
}

func (s *subjectService) UpdateSubject(ctx context.Context, learnerID, subjectID uuid.UUID, req *model.PatchSubjectRequest) (*model.Subject, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "subject_id", subjectID)

	var updated *model.Subject
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 存在確認
		subject, err := s.subjectRepo.FindByID(ctx, tx, learnerID, subjectID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Name != nil && *req.Name != subject.Name {
			exists, err := s.subjectRepo.CheckNameExists(ctx, tx, learnerID, *req.Name, &subjectID)
			if err != nil {
				logger.Error("Error checking subject name existence during update", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_SUBJECT", "同じ名前の科目が既に登録されています。", "name", model.ErrConflict)
			}
			updates["name"] = *req.Name
		}
		if req.Credits != nil {
			updates["credits"] = *req.Credits
		}
		if req.ConfidenceLevel != nil {
			updates["confidence_level"] = *req.ConfidenceLevel
		}
		if req.WeakAreas != nil {
			updates["weak_areas"] = *req.WeakAreas
		}
		if req.StrongAreas != nil {
			updates["strong_areas"] = *req.StrongAreas
		}

		if len(updates) > 0 {
			if err := s.subjectRepo.Update(ctx, tx, learnerID, subjectID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
				}
				logger.Error("Error updating subject", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "科目の更新に失敗しました。", "", err)
			}
		}

		updated, err = s.subjectRepo.FindByID(ctx, tx, learnerID, subjectID)
		if err != nil {
			logger.Error("Error fetching updated subject", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *subjectService) DeleteSubject(ctx context.Context, learnerID, subjectID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "subject_id", subjectID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.subjectRepo.Delete(ctx, tx, learnerID, subjectID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error deleting subject", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "科目の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Subject deleted")
	return nil
}

// UpdateConfidence は自信度を更新し、変更履歴を記録します
func (s *subjectService) UpdateConfidence(ctx context.Context, learnerID uuid.UUID, req *model.UpdateConfidenceRequest) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "subject_id", req.SubjectID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"confidence_level": req.NewConfidence}
		if err := s.subjectRepo.Update(ctx, tx, learnerID, req.SubjectID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Error updating confidence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "自信度の更新に失敗しました。", "", err)
		}

		entry := &model.ProgressEntry{
			EntryID:         uuid.New(),
			LearnerID:       learnerID,
			SubjectID:       req.SubjectID,
			ConfidenceLevel: req.NewConfidence,
		}
		if err := s.progressRepo.Create(ctx, tx, entry); err != nil {
			logger.Error("Error recording progress entry", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "進捗履歴の記録に失敗しました。", "", err)
		}

		logger.Info("Confidence updated", "new_confidence", req.NewConfidence)
		return nil
	})
}

func (s *subjectService) GetProgressHistory(ctx context.Context, learnerID uuid.UUID) ([]*model.ProgressEntry, error) {
	entries, err := s.progressRepo.FindByLearner(ctx, s.db, learnerID, 100)
	if err != nil {
		middleware.GetLogger(ctx).Error("Error fetching progress history", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗履歴の取得に失敗しました。", "", err)
	}
	return entries, nil
}
