// internal/model/flashcard.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deck はフラッシュカードの束を表します
type Deck struct {
	DeckID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"deck_id"`
	LearnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	SubjectID   *uuid.UUID     `gorm:"type:uuid" json:"subject_id,omitempty"`
	CardCount   int            `gorm:"not null;default:0" json:"card_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Deck) TableName() string {
	return "decks"
}

// Flashcard は復習対象のカードを表します。
// NextReview が現在時刻以前になったカードが「復習期限到来」です。
type Flashcard struct {
	CardID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"card_id"`
	DeckID      uuid.UUID `gorm:"type:uuid;not null;index" json:"deck_id"`
	LearnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Front       string    `gorm:"not null" json:"front"`
	Back        string    `gorm:"not null" json:"back"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Difficulty  int       `gorm:"not null;default:2" json:"difficulty"` // 0=again, 1=hard, 2=good, 3=easy
	NextReview  time.Time `gorm:"not null;index" json:"next_review"`
	ReviewCount int       `gorm:"not null;default:0" json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}

// デッキ作成リクエストDTO
type PostDeckRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=500"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
}

// カード作成リクエストDTO
type PostFlashcardRequest struct {
	Front string   `json:"front" validate:"required,min=1"`
	Back  string   `json:"back" validate:"required,min=1"`
	Tags  []string `json:"tags"`
}

// 復習結果送信リクエストのDTO
type ReviewFlashcardRequest struct {
	Difficulty *int `json:"difficulty" validate:"required,min=0,max=3"`
}

// ReviewFlashcardResponse は復習登録後のレスポンス
type ReviewFlashcardResponse struct {
	Message    string    `json:"message"`
	NextReview time.Time `json:"next_review"`
}
