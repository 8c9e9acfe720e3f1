// internal/repository/flashcard_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go_5_study_planner/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	CreateDeck(ctx context.Context, tx *gorm.DB, deck *model.Deck) error
	FindDeckByID(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) (*model.Deck, error)
	FindDecksByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Deck, error)
	AddDeckCardCount(ctx context.Context, tx *gorm.DB, deckID uuid.UUID, delta int) error
	DeleteDeck(ctx context.Context, tx *gorm.DB, learnerID, deckID uuid.UUID) error

	CreateCard(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	FindCardByID(ctx context.Context, db *gorm.DB, learnerID, cardID uuid.UUID) (*model.Flashcard, error)
	FindCardsByDeck(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) ([]*model.Flashcard, error)
	// FindDue は next_review が now 以前のカードを期限の古い順に返します
	FindDue(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.Flashcard, error)
	UpdateCard(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error
	DeleteCard(ctx context.Context, tx *gorm.DB, learnerID, cardID uuid.UUID) error
	DeleteCardsByDeck(ctx context.Context, tx *gorm.DB, learnerID, deckID uuid.UUID) error
}

type gormFlashcardRepository struct{}

func NewGormFlashcardRepository() FlashcardRepository {
	return &gormFlashcardRepository{}
}

func (r *gormFlashcardRepository) CreateDeck(ctx context.Context, tx *gorm.DB, deck *model.Deck) error {
	return tx.WithContext(ctx).Create(deck).Error
}

func (r *gormFlashcardRepository) FindDeckByID(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) (*model.Deck, error) {
	var deck model.Deck
	result := db.WithContext(ctx).Where("learner_id = ? AND deck_id = ?", learnerID, deckID).First(&deck)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &deck, nil
}

func (r *gormFlashcardRepository) FindDecksByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.Deck, error) {
	var decks []*model.Deck
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).Order("created_at ASC").Find(&decks)
	if result.Error != nil {
		return nil, result.Error
	}
	return decks, nil
}

func (r *gormFlashcardRepository) AddDeckCardCount(ctx context.Context, tx *gorm.DB, deckID uuid.UUID, delta int) error {
	result := tx.WithContext(ctx).Model(&model.Deck{}).
		Where("deck_id = ?", deckID).
		UpdateColumn("card_count", gorm.Expr("card_count + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) DeleteDeck(ctx context.Context, tx *gorm.DB, learnerID, deckID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("learner_id = ? AND deck_id = ?", learnerID, deckID).
		Delete(&model.Deck{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) CreateCard(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	return tx.WithContext(ctx).Create(card).Error
}

func (r *gormFlashcardRepository) FindCardByID(ctx context.Context, db *gorm.DB, learnerID, cardID uuid.UUID) (*model.Flashcard, error) {
	var card model.Flashcard
	result := db.WithContext(ctx).Where("learner_id = ? AND card_id = ?", learnerID, cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

func (r *gormFlashcardRepository) FindCardsByDeck(ctx context.Context, db *gorm.DB, learnerID, deckID uuid.UUID) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("learner_id = ? AND deck_id = ?", learnerID, deckID).
		Order("created_at ASC").
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *gormFlashcardRepository) FindDue(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.Flashcard, error) {
	var cards []*model.Flashcard
	result := db.WithContext(ctx).
		Where("learner_id = ? AND next_review <= ?", learnerID, now).
		Order("next_review ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

func (r *gormFlashcardRepository) UpdateCard(ctx context.Context, tx *gorm.DB, card *model.Flashcard) error {
	result := tx.WithContext(ctx).Save(card)
	return result.Error
}

func (r *gormFlashcardRepository) DeleteCard(ctx context.Context, tx *gorm.DB, learnerID, cardID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("learner_id = ? AND card_id = ?", learnerID, cardID).
		Delete(&model.Flashcard{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFlashcardRepository) DeleteCardsByDeck(ctx context.Context, tx *gorm.DB, learnerID, deckID uuid.UUID) error {
	return tx.WithContext(ctx).
		Where("learner_id = ? AND deck_id = ?", learnerID, deckID).
		Delete(&model.Flashcard{}).Error
}
