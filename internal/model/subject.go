// internal/model/subject.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject は科目とその自己評価を表します
type Subject struct {
	SubjectID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"subject_id"`
	LearnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name            string         `gorm:"not null" json:"name"`
	Credits         int            `gorm:"not null" json:"credits"`                    // 単位数 (配分の重み)
	ConfidenceLevel int            `gorm:"not null;default:3" json:"confidence_level"` // 1 (弱い) 〜 5 (強い)
	WeakAreas       []string       `gorm:"serializer:json" json:"weak_areas"`
	StrongAreas     []string       `gorm:"serializer:json" json:"strong_areas"`
	Color           string         `json:"color"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Subject) TableName() string {
	return "subjects"
}

// ProgressEntry は自信度の変更履歴を表します
type ProgressEntry struct {
	EntryID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"entry_id"`
	LearnerID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	SubjectID       uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	ConfidenceLevel int       `gorm:"not null" json:"confidence_level"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

// 科目作成リクエストDTO
type PostSubjectRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=100"`
	Credits         int      `json:"credits" validate:"required,min=1,max=10"`
	ConfidenceLevel int      `json:"confidence_level" validate:"required,min=1,max=5"`
	WeakAreas       []string `json:"weak_areas"`
	StrongAreas     []string `json:"strong_areas"`
}

// 科目更新（部分）リクエストDTO
type PatchSubjectRequest struct {
	Name            *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Credits         *int      `json:"credits,omitempty" validate:"omitempty,min=1,max=10"`
	ConfidenceLevel *int      `json:"confidence_level,omitempty" validate:"omitempty,min=1,max=5"`
	WeakAreas       *[]string `json:"weak_areas,omitempty"`
	StrongAreas     *[]string `json:"strong_areas,omitempty"`
}

// 自信度更新リクエストDTO
type UpdateConfidenceRequest struct {
	SubjectID     uuid.UUID `json:"subject_id" validate:"required"`
	NewConfidence int       `json:"new_confidence" validate:"required,min=1,max=5"`
}

// SubjectStats は科目ごとの進捗集計です
type SubjectStats struct {
	SubjectID         uuid.UUID `json:"subject_id"`
	Name              string    `json:"name"`
	ConfidenceLevel   int       `json:"confidence_level"`
	TotalSessions     int       `json:"total_sessions"`
	CompletedSessions int       `json:"completed_sessions"`
	TotalHours        float64   `json:"total_hours"`
}
