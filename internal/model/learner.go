// internal/model/learner.go
package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Learner は学習者の基本情報と学習時間の設定を表します
type Learner struct {
	LearnerID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"learner_id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`

	// オンボーディングで設定される項目
	College             *string        `json:"college,omitempty"`
	Branch              *string        `json:"branch,omitempty"`
	GraduationYear      *int           `json:"graduation_year,omitempty"`
	WeekdayHours        float64        `gorm:"not null;default:3" json:"weekday_hours"`                    // 平日の学習時間 (h)
	WeekendHours        float64        `gorm:"not null;default:6" json:"weekend_hours"`                    // 週末の学習時間 (h)
	PreferredStudyTime  string         `gorm:"not null;default:'evening'" json:"preferred_study_time"`     // morning/afternoon/evening/night
	TargetDate          *string        `json:"target_date,omitempty"`                                      // YYYY-MM-DD
	OnboardingCompleted bool           `gorm:"default:false" json:"onboarding_completed"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Learner) TableName() string {
	return "learners"
}

type ContextKey string

const (
	LearnerIDKey ContextKey = "learnerID"
)

// RegisterRequest は新規登録APIのリクエストボディの構造体 (DTO)
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	Learner     *LearnerResponse `json:"learner"`
}

// LearnerResponse はクライアントに返す学習者情報の構造体
type LearnerResponse struct {
	LearnerID           uuid.UUID `json:"learner_id"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	College             *string   `json:"college,omitempty"`
	Branch              *string   `json:"branch,omitempty"`
	GraduationYear      *int      `json:"graduation_year,omitempty"`
	WeekdayHours        float64   `json:"weekday_hours"`
	WeekendHours        float64   `json:"weekend_hours"`
	PreferredStudyTime  string    `json:"preferred_study_time"`
	TargetDate          *string   `json:"target_date,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewLearnerResponse はエンティティからレスポンスDTOを組み立てます
func NewLearnerResponse(l *Learner) *LearnerResponse {
	return &LearnerResponse{
		LearnerID:           l.LearnerID,
		Name:                l.Name,
		Email:               l.Email,
		College:             l.College,
		Branch:              l.Branch,
		GraduationYear:      l.GraduationYear,
		WeekdayHours:        l.WeekdayHours,
		WeekendHours:        l.WeekendHours,
		PreferredStudyTime:  l.PreferredStudyTime,
		TargetDate:          l.TargetDate,
		OnboardingCompleted: l.OnboardingCompleted,
		CreatedAt:           l.CreatedAt,
	}
}

// OnboardingRequest はオンボーディング完了APIのリクエストボディ
type OnboardingRequest struct {
	College            string  `json:"college" validate:"required"`
	Branch             string  `json:"branch" validate:"required"`
	GraduationYear     int     `json:"graduation_year" validate:"required,min=2000,max=2100"`
	WeekdayHours       float64 `json:"weekday_hours" validate:"required,gt=0,max=24"`
	WeekendHours       float64 `json:"weekend_hours" validate:"required,gt=0,max=24"`
	PreferredStudyTime string  `json:"preferred_study_time" validate:"required,oneof=morning afternoon evening night"`
	TargetDate         string  `json:"target_date" validate:"required,datetime=2006-01-02"`
}

// PatchProfileRequest はプロフィール更新（部分）リクエストDTO
type PatchProfileRequest struct {
	Name               *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	College            *string  `json:"college,omitempty"`
	Branch             *string  `json:"branch,omitempty"`
	GraduationYear     *int     `json:"graduation_year,omitempty" validate:"omitempty,min=2000,max=2100"`
	WeekdayHours       *float64 `json:"weekday_hours,omitempty" validate:"omitempty,gt=0,max=24"`
	WeekendHours       *float64 `json:"weekend_hours,omitempty" validate:"omitempty,gt=0,max=24"`
	PreferredStudyTime *string  `json:"preferred_study_time,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
	TargetDate         *string  `json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム（ペイロード）
type JWTCustomClaims struct {
	Email                string `json:"email"`
	jwt.RegisteredClaims        // 標準クレーム (iss, sub, exp など) を埋め込む
}
