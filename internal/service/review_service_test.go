// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_study_planner/internal/config"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/repository/mocks"
	"go_5_study_planner/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBReview(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func testReviewConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{ReviewLimit: 10},
	}
}

func Test_reviewService_GetDueCards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	learnerID := uuid.New()

	dueCards := []*model.Flashcard{
		{CardID: uuid.New(), LearnerID: learnerID, Front: "due1"},
		{CardID: uuid.New(), LearnerID: learnerID, Front: "due2"},
	}

	tests := []struct {
		name      string
		setupMock func(m *mocks.FlashcardRepository)
		wantErr   error
		wantCount int
	}{
		{
			name: "正常系: 期限到来カードを取得",
			setupMock: func(m *mocks.FlashcardRepository) {
				m.On("FindDue", ctx, mock.Anything, learnerID, mock.AnythingOfType("time.Time"), 10).
					Return(dueCards, nil).Once()
			},
			wantCount: 2,
		},
		{
			name: "正常系: 期限到来カードなし",
			setupMock: func(m *mocks.FlashcardRepository) {
				m.On("FindDue", ctx, mock.Anything, learnerID, mock.AnythingOfType("time.Time"), 10).
					Return([]*model.Flashcard{}, nil).Once()
			},
			wantCount: 0,
		},
		{
			name: "異常系: リポジトリでDBエラー",
			setupMock: func(m *mocks.FlashcardRepository) {
				m.On("FindDue", ctx, mock.Anything, learnerID, mock.AnythingOfType("time.Time"), 10).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.FlashcardRepository)
			tt.setupMock(mockRepo)

			s := NewReviewService(db, mockRepo, testReviewConfig())
			cards, err := s.GetDueCards(ctx, learnerID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, cards)
			} else {
				require.NoError(t, err)
				assert.Len(t, cards, tt.wantCount)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_reviewService_ReviewCard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	learnerID := uuid.New()
	cardID := uuid.New()

	makeCard := func() *model.Flashcard {
		return &model.Flashcard{
			CardID:      cardID,
			LearnerID:   learnerID,
			Front:       "front",
			Back:        "back",
			Difficulty:  int(srs.Good),
			NextReview:  time.Now().Add(-time.Hour),
			ReviewCount: 3,
		}
	}

	tests := []struct {
		name         string
		rating       int
		wantInterval time.Duration
	}{
		{"again評価で1分後", 0, 1 * time.Minute},
		{"hard評価で10分後", 1, 10 * time.Minute},
		{"good評価で1日後", 2, 1440 * time.Minute},
		{"easy評価で3日後", 3, 4320 * time.Minute},
		{"範囲外評価はデフォルト間隔", 9, 1440 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.FlashcardRepository)
			card := makeCard()

			mockRepo.On("FindCardByID", ctx, mock.Anything, learnerID, cardID).Return(card, nil).Once()
			mockRepo.On("UpdateCard", ctx, mock.Anything, card).Return(nil).Once()

			before := time.Now()
			s := NewReviewService(db, mockRepo, testReviewConfig())
			resp, err := s.ReviewCard(ctx, learnerID, cardID, tt.rating)
			after := time.Now()

			require.NoError(t, err)
			require.NotNil(t, resp)

			// 次回復習時刻は now + interval の範囲に収まる
			assert.False(t, resp.NextReview.Before(before.Add(tt.wantInterval)))
			assert.False(t, resp.NextReview.After(after.Add(tt.wantInterval)))

			assert.Equal(t, tt.rating, card.Difficulty)
			assert.Equal(t, 4, card.ReviewCount, "復習回数がインクリメントされる")
			assert.Equal(t, resp.NextReview, card.NextReview)
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("異常系: カードが見つからない", func(t *testing.T) {
		mockRepo := new(mocks.FlashcardRepository)
		mockRepo.On("FindCardByID", ctx, mock.Anything, learnerID, cardID).
			Return(nil, model.ErrNotFound).Once()

		s := NewReviewService(db, mockRepo, testReviewConfig())
		resp, err := s.ReviewCard(ctx, learnerID, cardID, 2)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertNotCalled(t, "UpdateCard", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_reviewService_CreateCard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	learnerID := uuid.New()
	deckID := uuid.New()

	deck := &model.Deck{DeckID: deckID, LearnerID: learnerID, Name: "デッキ"}
	req := &model.PostFlashcardRequest{Front: "表", Back: "裏", Tags: []string{"tag"}}

	t.Run("正常系: カード作成でデッキ枚数が増える", func(t *testing.T) {
		mockRepo := new(mocks.FlashcardRepository)
		mockRepo.On("FindDeckByID", ctx, mock.Anything, learnerID, deckID).Return(deck, nil).Once()
		mockRepo.On("CreateCard", ctx, mock.Anything, mock.AnythingOfType("*model.Flashcard")).Return(nil).Once()
		mockRepo.On("AddDeckCardCount", ctx, mock.Anything, deckID, 1).Return(nil).Once()

		s := NewReviewService(db, mockRepo, testReviewConfig())
		card, err := s.CreateCard(ctx, learnerID, deckID, req)

		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, "表", card.Front)
		assert.Equal(t, deckID, card.DeckID)
		// 新規カードは即座に復習対象
		assert.False(t, card.NextReview.After(time.Now()))
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: デッキが存在しない", func(t *testing.T) {
		mockRepo := new(mocks.FlashcardRepository)
		mockRepo.On("FindDeckByID", ctx, mock.Anything, learnerID, deckID).
			Return(nil, model.ErrNotFound).Once()

		s := NewReviewService(db, mockRepo, testReviewConfig())
		card, err := s.CreateCard(ctx, learnerID, deckID, req)

		require.Error(t, err)
		assert.Nil(t, card)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertNotCalled(t, "CreateCard", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_reviewService_DeleteDeck(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview(t)
	learnerID := uuid.New()
	deckID := uuid.New()

	t.Run("正常系: デッキと配下のカードを削除", func(t *testing.T) {
		mockRepo := new(mocks.FlashcardRepository)
		mockRepo.On("DeleteDeck", ctx, mock.Anything, learnerID, deckID).Return(nil).Once()
		mockRepo.On("DeleteCardsByDeck", ctx, mock.Anything, learnerID, deckID).Return(nil).Once()

		s := NewReviewService(db, mockRepo, testReviewConfig())
		err := s.DeleteDeck(ctx, learnerID, deckID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("異常系: デッキが存在しない", func(t *testing.T) {
		mockRepo := new(mocks.FlashcardRepository)
		mockRepo.On("DeleteDeck", ctx, mock.Anything, learnerID, deckID).
			Return(model.ErrNotFound).Once()

		s := NewReviewService(db, mockRepo, testReviewConfig())
		err := s.DeleteDeck(ctx, learnerID, deckID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockRepo.AssertNotCalled(t, "DeleteCardsByDeck", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
