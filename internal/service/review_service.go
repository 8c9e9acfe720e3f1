// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_study_planner/internal/config"
	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/repository"
	"go_5_study_planner/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewService interface {
	CreateDeck(ctx context.Context, learnerID uuid.UUID, req *model.PostDeckRequest) (*model.Deck, error)
	ListDecks(ctx context.Context, learnerID uuid.UUID) ([]*model.Deck, error)
	DeleteDeck(ctx context.Context, learnerID, deckID uuid.UUID) error

	CreateCard(ctx context.Context, learnerID, deckID uuid.UUID, req *model.PostFlashcardRequest) (*model.Flashcard, error)
	ListCards(ctx context.Context, learnerID, deckID uuid.UUID) ([]*model.Flashcard, error)
	DeleteCard(ctx context.Context, learnerID, cardID uuid.UUID) error

	GetDueCards(ctx context.Context, learnerID uuid.UUID) ([]*model.Flashcard, error)
	ReviewCard(ctx context.Context, learnerID, cardID uuid.UUID, rating int) (*model.ReviewFlashcardResponse, error)
}

type reviewService struct {
	db            *gorm.DB
	flashcardRepo repository.FlashcardRepository
	cfg           *config.Config
}

func NewReviewService(db *gorm.DB, flashcardRepo repository.FlashcardRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:            db,
		flashcardRepo: flashcardRepo,
		cfg:           cfg,
	}
}

func (s *reviewService) CreateDeck(ctx context.Context, learnerID uuid.UUID, req *model.PostDeckRequest) (*model.Deck, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	deck := &model.Deck{
		DeckID:      uuid.New(),
		LearnerID:   learnerID,
		Name:        req.Name,
		Description: req.Description,
		SubjectID:   req.SubjectID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.flashcardRepo.CreateDeck(ctx, tx, deck); err != nil {
			logger.Error("Failed to create deck", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Deck created", "deck_id", deck.DeckID, "name", deck.Name)
	return deck, nil
}

func (s *reviewService) ListDecks(ctx context.Context, learnerID uuid.UUID) ([]*model.Deck, error) {
	decks, err := s.flashcardRepo.FindDecksByLearner(ctx, s.db, learnerID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list decks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "デッキ一覧の取得に失敗しました。", "", err)
	}
	return decks, nil
}

// DeleteDeck はデッキと配下のカードをまとめて削除します
func (s *reviewService) DeleteDeck(ctx context.Context, learnerID, deckID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "deck_id", deckID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.flashcardRepo.DeleteDeck(ctx, tx, learnerID, deckID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "デッキが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete deck", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "デッキの削除に失敗しました。", "", err)
		}
		if err := s.flashcardRepo.DeleteCardsByDeck(ctx, tx, learnerID, deckID); err != nil {
			logger.Error("Failed to delete cards of deck", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
		}
		logger.Info("Deck deleted")
		return nil
	})
}

// CreateCard はカードを作成します。新規カードは即座に復習対象になります。
func (s *reviewService) CreateCard(ctx context.Context, learnerID, deckID uuid.UUID, req *model.PostFlashcardRequest) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "deck_id", deckID)

	card := &model.Flashcard{
		CardID:     uuid.New(),
		DeckID:     deckID,
		LearnerID:  learnerID,
		Front:      req.Front,
		Back:       req.Back,
		Tags:       req.Tags,
		Difficulty: int(srs.Good),
		NextReview: time.Now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// デッキの存在と所有者を確認してからカードを作る
		if _, err := s.flashcardRepo.FindDeckByID(ctx, tx, learnerID, deckID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "デッキが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to find deck for card creation", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if err := s.flashcardRepo.CreateCard(ctx, tx, card); err != nil {
			logger.Error("Failed to create card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}
		if err := s.flashcardRepo.AddDeckCardCount(ctx, tx, deckID, 1); err != nil {
			logger.Error("Failed to increment deck card count", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card created", "card_id", card.CardID)
	return card, nil
}

func (s *reviewService) ListCards(ctx context.Context, learnerID, deckID uuid.UUID) ([]*model.Flashcard, error) {
	if _, err := s.flashcardRepo.FindDeckByID(ctx, s.db, learnerID, deckID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "デッキが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	cards, err := s.flashcardRepo.FindCardsByDeck(ctx, s.db, learnerID, deckID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	return cards, nil
}

func (s *reviewService) DeleteCard(ctx context.Context, learnerID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "card_id", cardID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.flashcardRepo.FindCardByID(ctx, tx, learnerID, cardID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "カードが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to find card for deletion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if err := s.flashcardRepo.DeleteCard(ctx, tx, learnerID, cardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "カードが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
		}
		if err := s.flashcardRepo.AddDeckCardCount(ctx, tx, card.DeckID, -1); err != nil {
			logger.Error("Failed to decrement deck card count", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
		}
		logger.Info("Card deleted")
		return nil
	})
}

// GetDueCards は復習期限が到来したカードを期限の古い順に返します
func (s *reviewService) GetDueCards(ctx context.Context, learnerID uuid.UUID) ([]*model.Flashcard, error) {
	cards, err := s.flashcardRepo.FindDue(ctx, s.db, learnerID, time.Now(), s.cfg.App.ReviewLimit)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to fetch due cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習カードの取得に失敗しました。", "", err)
	}
	return cards, nil
}

// ReviewCard は復習結果を記録し、次回復習時刻を更新します。
// 範囲外の評価は srs 側で既定間隔にフォールバックします。
func (s *reviewService) ReviewCard(ctx context.Context, learnerID, cardID uuid.UUID, rating int) (*model.ReviewFlashcardResponse, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "card_id", cardID)

	var next time.Time
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.flashcardRepo.FindCardByID(ctx, tx, learnerID, cardID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "カードが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to find card for review", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		next = srs.NextReview(time.Now(), srs.Rating(rating))
		card.Difficulty = rating
		card.NextReview = next
		card.ReviewCount++

		if err := s.flashcardRepo.UpdateCard(ctx, tx, card); err != nil {
			logger.Error("Failed to update card after review", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習結果の保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card reviewed", "rating", rating, "next_review", next)
	return &model.ReviewFlashcardResponse{
		Message:    "Review recorded",
		NextReview: next,
	}, nil
}
