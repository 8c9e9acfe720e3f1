// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_study_planner/internal/config"
	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error)
	CompleteOnboarding(ctx context.Context, learnerID uuid.UUID, req *model.OnboardingRequest) (*model.Learner, error)
	UpdateProfile(ctx context.Context, learnerID uuid.UUID, req *model.PatchProfileRequest) (*model.Learner, error)
}

type authService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	mailer      Mailer
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, learnerRepo repository.LearnerRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		learnerRepo: learnerRepo,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// Register は新しい学習者を登録し、アクセストークンを発行します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)
	var newLearner *model.Learner

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Emailでの重複チェック
		_, err := s.learnerRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		learner := &model.Learner{
			LearnerID:          uuid.New(),
			Name:               req.Name,
			Email:              req.Email,
			PasswordHash:       string(hashedPassword),
			WeekdayHours:       3,
			WeekendHours:       6,
			PreferredStudyTime: "evening",
		}

		if err := s.learnerRepo.Create(ctx, tx, learner); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during learner creation (race condition)", "error", err)
				return model.NewAppError("DUPLICATE_EMAIL", "このメールアドレスは既に使用されています。", "email", model.ErrConflict)
			}
			logger.Error("Failed to create learner in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newLearner = learner
		return nil // トランザクション成功
	})
	if err != nil {
		return nil, err
	}

	// ウェルカムメールはベストエフォート。失敗しても登録自体は成功とする。
	if sendErr := s.mailer.Send(ctx, newLearner.Email,
		"Welcome to EduBloom",
		fmt.Sprintf("Hi %s,\n\nYour study planner account is ready. Add your subjects and generate your first 14-day plan.\n", newLearner.Name),
	); sendErr != nil {
		logger.Warn("Failed to send welcome email", "error", sendErr, "email", newLearner.Email)
	}

	token, err := s.generateAccessToken(newLearner)
	if err != nil {
		logger.Error("Failed to generate access token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("Learner registered successfully", "learner_id", newLearner.LearnerID)
	return &model.LoginResponse{
		AccessToken: token,
		Learner:     model.NewLearnerResponse(newLearner),
	}, nil
}

// Login はメールアドレスとパスワードを検証し、アクセストークンを発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	learner, err := s.learnerRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// 存在しないユーザーとパスワード誤りは同じエラーにする (列挙攻撃対策)
			logger.Warn("Login failed: email not found", "email", req.Email)
			return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Failed to find learner by email", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(learner.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "learner_id", learner.LearnerID)
		return nil, model.NewAppError("INVALID_CREDENTIALS", "メールアドレスまたはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	token, err := s.generateAccessToken(learner)
	if err != nil {
		logger.Error("Failed to generate access token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("Learner logged in successfully", "learner_id", learner.LearnerID)
	return &model.LoginResponse{
		AccessToken: token,
		Learner:     model.NewLearnerResponse(learner),
	}, nil
}

func (s *authService) GetLearner(ctx context.Context, learnerID uuid.UUID) (*model.Learner, error) {
	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return learner, nil
}

// CompleteOnboarding は学習時間の設定を保存し、オンボーディングを完了にします
func (s *authService) CompleteOnboarding(ctx context.Context, learnerID uuid.UUID, req *model.OnboardingRequest) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	updates := map[string]interface{}{
		"college":              req.College,
		"branch":               req.Branch,
		"graduation_year":      req.GraduationYear,
		"weekday_hours":        req.WeekdayHours,
		"weekend_hours":        req.WeekendHours,
		"preferred_study_time": req.PreferredStudyTime,
		"target_date":          req.TargetDate,
		"onboarding_completed": true,
	}

	var updated *model.Learner
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.learnerRepo.Update(ctx, tx, learnerID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to update learner for onboarding", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "設定の保存に失敗しました。", "", err)
		}
		var err error
		updated, err = s.learnerRepo.FindByID(ctx, tx, learnerID)
		if err != nil {
			logger.Error("Failed to fetch learner after onboarding", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Onboarding completed")
	return updated, nil
}

// UpdateProfile はプロフィールを部分更新します
func (s *authService) UpdateProfile(ctx context.Context, learnerID uuid.UUID, req *model.PatchProfileRequest) (*model.Learner, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.College != nil {
		updates["college"] = *req.College
	}
	if req.Branch != nil {
		updates["branch"] = *req.Branch
	}
	if req.GraduationYear != nil {
		updates["graduation_year"] = *req.GraduationYear
	}
	if req.WeekdayHours != nil {
		updates["weekday_hours"] = *req.WeekdayHours
	}
	if req.WeekendHours != nil {
		updates["weekend_hours"] = *req.WeekendHours
	}
	if req.PreferredStudyTime != nil {
		updates["preferred_study_time"] = *req.PreferredStudyTime
	}
	if req.TargetDate != nil {
		updates["target_date"] = *req.TargetDate
	}

	var updated *model.Learner
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := s.learnerRepo.Update(ctx, tx, learnerID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
				}
				logger.Error("Failed to update profile", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "プロフィールの更新に失敗しました。", "", err)
			}
		}
		var err error
		updated, err = s.learnerRepo.FindByID(ctx, tx, learnerID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to fetch learner after profile update", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// generateAccessToken は学習者IDをsubjectに持つJWTを発行します
func (s *authService) generateAccessToken(learner *model.Learner) (string, error) {
	now := time.Now()
	claims := model.JWTCustomClaims{
		Email: learner.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   learner.LearnerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
