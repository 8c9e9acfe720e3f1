// internal/service/plan_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/planner"
	"go_5_study_planner/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 (インメモリDBセットアップ) ---
// トランザクション境界のためだけに使う。リポジトリはモックなのでマイグレーション不要。
func setupTestDBPlan(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// stubPlanner はテスト用の固定出力プランナーです
type stubPlanner struct {
	data *model.PlanData
	err  error
}

func (s *stubPlanner) GeneratePlan(_ context.Context, _ *model.Learner, _ []*model.Subject, _ time.Time) (*model.PlanData, error) {
	return s.data, s.err
}

var _ planner.Planner = (*stubPlanner)(nil)

func plannedSession(subjectName string) model.PlannedSession {
	return model.PlannedSession{
		SubjectName:   subjectName,
		Date:          "2025-01-06",
		StartTime:     "18:00",
		EndTime:       "20:00",
		DurationHours: 2.0,
		SessionType:   model.SessionTypeLearning,
		Topics:        []string{"Basics"},
		CognitiveLoad: model.CognitiveLoadMedium,
	}
}

func Test_planService_GeneratePlan(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPlan(t)

	learnerID := uuid.New()
	learner := &model.Learner{LearnerID: learnerID, Name: "学習者", PreferredStudyTime: "evening"}
	subject := &model.Subject{
		SubjectID:       uuid.New(),
		LearnerID:       learnerID,
		Name:            "Data Structures",
		Credits:         4,
		ConfidenceLevel: 2,
		Color:           "#6366F1",
	}

	t.Run("正常系: フォールバックプランナーでプラン生成", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return([]*model.Subject{subject}, nil).Once()

		var savedPlan *model.StudyPlan
		mockPlanRepo.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.StudyPlan")).
			Run(func(args mock.Arguments) {
				savedPlan = args.Get(2).(*model.StudyPlan)
			}).
			Return(nil).Once()

		fallback := &stubPlanner{data: &model.PlanData{
			Sessions:            []model.PlannedSession{plannedSession("Data Structures")},
			SubjectBreakdown:    map[string]model.SubjectBreakdown{"Data Structures": {TotalHours: 42, Percentage: 100}},
			Recommendations:     []string{"rec"},
			NextSteps:           []string{"step"},
			EstimatedCompletion: "2025-01-20",
		}}

		s := NewPlanService(db, mockLearnerRepo, mockSubjectRepo, mockPlanRepo, nil, fallback)
		plan, err := s.GeneratePlan(ctx, learnerID)

		require.NoError(t, err)
		require.NotNil(t, plan)
		require.Len(t, plan.Sessions, 1)
		// セッションには科目IDと表示色が解決されている
		assert.Equal(t, subject.SubjectID, plan.Sessions[0].SubjectID)
		assert.Equal(t, subject.Color, plan.Sessions[0].Color)
		assert.NotEqual(t, uuid.Nil, plan.Sessions[0].SessionID)
		assert.False(t, plan.Sessions[0].Completed)
		assert.Equal(t, "2025-01-20", plan.EstimatedCompletion)

		require.NotNil(t, savedPlan)
		assert.Equal(t, plan.PlanID, savedPlan.PlanID)

		mockLearnerRepo.AssertExpectations(t)
		mockSubjectRepo.AssertExpectations(t)
		mockPlanRepo.AssertExpectations(t)
	})

	t.Run("正常系: 未知の科目名のセッションは除外される", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return([]*model.Subject{subject}, nil).Once()
		mockPlanRepo.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.StudyPlan")).Return(nil).Once()

		// モデル連携プランナーが実在しない科目名を出したケース
		fallback := &stubPlanner{data: &model.PlanData{
			Sessions: []model.PlannedSession{
				plannedSession("Data Structures"),
				plannedSession("Quantum Basket Weaving"),
			},
		}}

		s := NewPlanService(db, mockLearnerRepo, mockSubjectRepo, mockPlanRepo, nil, fallback)
		plan, err := s.GeneratePlan(ctx, learnerID)

		require.NoError(t, err)
		require.Len(t, plan.Sessions, 1)
		assert.Equal(t, "Data Structures", plan.Sessions[0].SubjectName)
	})

	t.Run("正常系: AIプランナー失敗時はフォールバックが使われる", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return([]*model.Subject{subject}, nil).Once()
		mockPlanRepo.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.StudyPlan")).Return(nil).Once()

		ai := &stubPlanner{err: errors.New("model timeout")}
		fallback := &stubPlanner{data: &model.PlanData{
			Sessions:        []model.PlannedSession{plannedSession("Data Structures")},
			Recommendations: []string{"fallback"},
		}}

		s := NewPlanService(db, mockLearnerRepo, mockSubjectRepo, mockPlanRepo, ai, fallback)
		plan, err := s.GeneratePlan(ctx, learnerID)

		require.NoError(t, err)
		assert.Equal(t, []string{"fallback"}, plan.Recommendations)
	})

	t.Run("正常系: AIプランナー成功時はその結果を使う", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return([]*model.Subject{subject}, nil).Once()
		mockPlanRepo.On("Upsert", ctx, mock.Anything, mock.AnythingOfType("*model.StudyPlan")).Return(nil).Once()

		ai := &stubPlanner{data: &model.PlanData{
			Sessions:        []model.PlannedSession{plannedSession("Data Structures")},
			Recommendations: []string{"from ai"},
		}}
		fallback := &stubPlanner{data: &model.PlanData{Recommendations: []string{"fallback"}}}

		s := NewPlanService(db, mockLearnerRepo, mockSubjectRepo, mockPlanRepo, ai, fallback)
		plan, err := s.GeneratePlan(ctx, learnerID)

		require.NoError(t, err)
		assert.Equal(t, []string{"from ai"}, plan.Recommendations)
	})

	t.Run("異常系: 科目未登録ならInvalidInput", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(learner, nil).Once()
		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return([]*model.Subject{}, nil).Once()

		s := NewPlanService(db, mockLearnerRepo, mockSubjectRepo, mockPlanRepo, nil, &stubPlanner{})
		plan, err := s.GeneratePlan(ctx, learnerID)

		require.Error(t, err)
		assert.Nil(t, plan)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NO_SUBJECTS", appErr.Detail.Code)

		mockPlanRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 学習者が存在しない", func(t *testing.T) {
		mockLearnerRepo := new(mocks.LearnerRepository)
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockLearnerRepo.On("FindByID", ctx, mock.Anything, learnerID).Return(nil, model.ErrNotFound).Once()

		s := NewPlanService(db, mockLearnerRepo, mockSubjectRepo, mockPlanRepo, nil, &stubPlanner{})
		_, err := s.GeneratePlan(ctx, learnerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_planService_CompleteSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPlan(t)

	learnerID := uuid.New()
	sessionID := uuid.New()

	makePlan := func() *model.StudyPlan {
		return &model.StudyPlan{
			PlanID:    uuid.New(),
			LearnerID: learnerID,
			Sessions: []model.StudySession{
				{SessionID: sessionID, SubjectName: "OS", Completed: false},
				{SessionID: uuid.New(), SubjectName: "OS", Completed: false},
			},
		}
	}

	t.Run("正常系: 完了フラグが立つ", func(t *testing.T) {
		mockPlanRepo := new(mocks.PlanRepository)
		plan := makePlan()

		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return(plan, nil).Once()
		mockPlanRepo.On("Save", ctx, mock.Anything, plan).Return(nil).Once()

		s := NewPlanService(db, nil, nil, mockPlanRepo, nil, &stubPlanner{})
		err := s.CompleteSession(ctx, learnerID, sessionID)

		require.NoError(t, err)
		assert.True(t, plan.Sessions[0].Completed)
		assert.False(t, plan.Sessions[1].Completed, "他のセッションには影響しない")
		mockPlanRepo.AssertExpectations(t)
	})

	t.Run("異常系: セッションが見つからない", func(t *testing.T) {
		mockPlanRepo := new(mocks.PlanRepository)
		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return(makePlan(), nil).Once()

		s := NewPlanService(db, nil, nil, mockPlanRepo, nil, &stubPlanner{})
		err := s.CompleteSession(ctx, learnerID, uuid.New())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockPlanRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: プラン未生成", func(t *testing.T) {
		mockPlanRepo := new(mocks.PlanRepository)
		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return(nil, model.ErrNotFound).Once()

		s := NewPlanService(db, nil, nil, mockPlanRepo, nil, &stubPlanner{})
		err := s.CompleteSession(ctx, learnerID, sessionID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_planService_GetStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPlan(t)

	learnerID := uuid.New()
	subjectA := &model.Subject{SubjectID: uuid.New(), Name: "A", ConfidenceLevel: 2}
	subjectB := &model.Subject{SubjectID: uuid.New(), Name: "B", ConfidenceLevel: 4}

	t.Run("正常系: プランから科目ごとに集計", func(t *testing.T) {
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).
			Return([]*model.Subject{subjectA, subjectB}, nil).Once()
		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return(&model.StudyPlan{
			Sessions: []model.StudySession{
				{SessionID: uuid.New(), SubjectID: subjectA.SubjectID, DurationHours: 2, Completed: true},
				{SessionID: uuid.New(), SubjectID: subjectA.SubjectID, DurationHours: 1.5, Completed: false},
				{SessionID: uuid.New(), SubjectID: subjectB.SubjectID, DurationHours: 1, Completed: false},
			},
		}, nil).Once()

		s := NewPlanService(db, nil, mockSubjectRepo, mockPlanRepo, nil, &stubPlanner{})
		stats, err := s.GetStats(ctx, learnerID)

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 2, stats[0].TotalSessions)
		assert.Equal(t, 1, stats[0].CompletedSessions)
		assert.InDelta(t, 3.5, stats[0].TotalHours, 1e-9)
		assert.Equal(t, 1, stats[1].TotalSessions)
		assert.Equal(t, 0, stats[1].CompletedSessions)
	})

	t.Run("正常系: プラン未生成ならゼロ集計", func(t *testing.T) {
		mockSubjectRepo := new(mocks.SubjectRepository)
		mockPlanRepo := new(mocks.PlanRepository)

		mockSubjectRepo.On("FindByLearner", ctx, mock.Anything, learnerID).
			Return([]*model.Subject{subjectA}, nil).Once()
		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return(nil, model.ErrNotFound).Once()

		s := NewPlanService(db, nil, mockSubjectRepo, mockPlanRepo, nil, &stubPlanner{})
		stats, err := s.GetStats(ctx, learnerID)

		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, 0, stats[0].TotalSessions)
	})
}

func Test_planService_ExportICS(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBPlan(t)

	learnerID := uuid.New()
	sessionID := uuid.New()

	t.Run("正常系: iCalendar形式で出力", func(t *testing.T) {
		mockPlanRepo := new(mocks.PlanRepository)
		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).Return(&model.StudyPlan{
			Sessions: []model.StudySession{
				{
					SessionID:     sessionID,
					SubjectName:   "Data Structures",
					Date:          "2025-01-06",
					StartTime:     "18:00",
					EndTime:       "20:00",
					SessionType:   model.SessionTypeLearning,
					Topics:        []string{"Trees", "Graphs"},
					CognitiveLoad: model.CognitiveLoadHigh,
				},
			},
		}, nil).Once()

		s := NewPlanService(db, nil, nil, mockPlanRepo, nil, &stubPlanner{})
		ics, err := s.ExportICS(ctx, learnerID)

		require.NoError(t, err)
		body := string(ics)
		assert.Contains(t, body, "BEGIN:VCALENDAR")
		assert.Contains(t, body, "DTSTART:20250106T180000")
		assert.Contains(t, body, "DTEND:20250106T200000")
		assert.Contains(t, body, "SUMMARY:Data Structures - Learning")
		assert.Contains(t, body, "DESCRIPTION:Topics: Trees, Graphs\\nCognitive Load: high")
		assert.Contains(t, body, "UID:"+sessionID.String()+"@edubloom")
		assert.Contains(t, body, "END:VCALENDAR")
	})

	t.Run("異常系: セッションが空ならNotFound", func(t *testing.T) {
		mockPlanRepo := new(mocks.PlanRepository)
		mockPlanRepo.On("FindByLearner", ctx, mock.Anything, learnerID).
			Return(&model.StudyPlan{}, nil).Once()

		s := NewPlanService(db, nil, nil, mockPlanRepo, nil, &stubPlanner{})
		_, err := s.ExportICS(ctx, learnerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
