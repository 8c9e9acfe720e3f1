// internal/repository/flashcard_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_5_study_planner/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupFlashcardTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Deck{}, &model.Flashcard{}))
	return db
}

func newTestCard(learnerID, deckID uuid.UUID, front string, nextReview time.Time) *model.Flashcard {
	return &model.Flashcard{
		CardID:     uuid.New(),
		DeckID:     deckID,
		LearnerID:  learnerID,
		Front:      front,
		Back:       "back",
		Difficulty: 2,
		NextReview: nextReview,
	}
}

func Test_gormFlashcardRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	db := setupFlashcardTestDB(t)
	repo := NewGormFlashcardRepository()
	learnerID := uuid.New()
	deckID := uuid.New()
	now := time.Now()

	// 期限順がバラバラになるように作成
	overdue2 := newTestCard(learnerID, deckID, "overdue2", now.Add(-1*time.Hour))
	overdue1 := newTestCard(learnerID, deckID, "overdue1", now.Add(-24*time.Hour))
	future := newTestCard(learnerID, deckID, "future", now.Add(24*time.Hour))
	otherLearner := newTestCard(uuid.New(), deckID, "other", now.Add(-24*time.Hour))

	for _, c := range []*model.Flashcard{overdue2, overdue1, future, otherLearner} {
		require.NoError(t, repo.CreateCard(ctx, db, c))
	}

	t.Run("正常系: 期限の古い順に返り、未来のカードは含まない", func(t *testing.T) {
		cards, err := repo.FindDue(ctx, db, learnerID, now, 10)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "overdue1", cards[0].Front)
		assert.Equal(t, "overdue2", cards[1].Front)
	})

	t.Run("正常系: limitで件数を制限", func(t *testing.T) {
		cards, err := repo.FindDue(ctx, db, learnerID, now, 1)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "overdue1", cards[0].Front)
	})
}

func Test_gormFlashcardRepository_DeckCardCount(t *testing.T) {
	ctx := context.Background()
	db := setupFlashcardTestDB(t)
	repo := NewGormFlashcardRepository()
	learnerID := uuid.New()

	deck := &model.Deck{DeckID: uuid.New(), LearnerID: learnerID, Name: "デッキ"}
	require.NoError(t, repo.CreateDeck(ctx, db, deck))

	require.NoError(t, repo.AddDeckCardCount(ctx, db, deck.DeckID, 1))
	require.NoError(t, repo.AddDeckCardCount(ctx, db, deck.DeckID, 1))
	require.NoError(t, repo.AddDeckCardCount(ctx, db, deck.DeckID, -1))

	found, err := repo.FindDeckByID(ctx, db, learnerID, deck.DeckID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.CardCount)

	t.Run("異常系: 存在しないデッキはNotFound", func(t *testing.T) {
		err := repo.AddDeckCardCount(ctx, db, uuid.New(), 1)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormFlashcardRepository_DeleteCardsByDeck(t *testing.T) {
	ctx := context.Background()
	db := setupFlashcardTestDB(t)
	repo := NewGormFlashcardRepository()
	learnerID := uuid.New()
	deckID := uuid.New()
	otherDeckID := uuid.New()
	now := time.Now()

	require.NoError(t, repo.CreateCard(ctx, db, newTestCard(learnerID, deckID, "c1", now)))
	require.NoError(t, repo.CreateCard(ctx, db, newTestCard(learnerID, deckID, "c2", now)))
	require.NoError(t, repo.CreateCard(ctx, db, newTestCard(learnerID, otherDeckID, "keep", now)))

	require.NoError(t, repo.DeleteCardsByDeck(ctx, db, learnerID, deckID))

	cards, err := repo.FindCardsByDeck(ctx, db, learnerID, deckID)
	require.NoError(t, err)
	assert.Empty(t, cards)

	kept, err := repo.FindCardsByDeck(ctx, db, learnerID, otherDeckID)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "他のデッキのカードは消えない")
}
