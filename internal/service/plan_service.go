// internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/planner"
	"go_5_study_planner/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanService interface {
	// GeneratePlan はプランを生成し、既存プランを丸ごと置き換えます。
	// 同一学習者に対する並行呼び出しの直列化は呼び出し側の責務です。
	GeneratePlan(ctx context.Context, learnerID uuid.UUID) (*model.StudyPlan, error)
	GetPlan(ctx context.Context, learnerID uuid.UUID) (*model.StudyPlan, error)
	CompleteSession(ctx context.Context, learnerID, sessionID uuid.UUID) error
	GetStats(ctx context.Context, learnerID uuid.UUID) ([]*model.SubjectStats, error)
	ExportICS(ctx context.Context, learnerID uuid.UUID) ([]byte, error)
}

type planService struct {
	db          *gorm.DB
	learnerRepo repository.LearnerRepository
	subjectRepo repository.SubjectRepository
	planRepo    repository.PlanRepository
	aiPlanner   planner.Planner // nil ならフォールバックのみ
	fallback    planner.Planner
}

// NewPlanService は PlanService を生成します。aiPlanner は nil を許容します。
func NewPlanService(db *gorm.DB, learnerRepo repository.LearnerRepository, subjectRepo repository.SubjectRepository, planRepo repository.PlanRepository, aiPlanner planner.Planner, fallback planner.Planner) PlanService {
	return &planService{
		db:          db,
		learnerRepo: learnerRepo,
		subjectRepo: subjectRepo,
		planRepo:    planRepo,
		aiPlanner:   aiPlanner,
		fallback:    fallback,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, learnerID uuid.UUID) (*model.StudyPlan, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	learner, err := s.learnerRepo.FindByID(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Failed to find learner", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	subjects, err := s.subjectRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list subjects for plan generation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "科目一覧の取得に失敗しました。", "", err)
	}
	if len(subjects) == 0 {
		// 空の科目集合ではプランナーを呼ばない (呼び出し側の前提条件違反)
		return nil, model.NewAppError("NO_SUBJECTS", "プランを生成する前に科目を1つ以上登録してください。", "", model.ErrInvalidInput)
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	planData := s.producePlanData(ctx, logger, learner, subjects, startDate)

	// プランナーは科目を名前でしか知らないため、ここでIDに解決する。
	// 未知の科目名のセッションは落とす (モデル連携プランナーが名前を
	// 創作した場合に起きる)。
	subjectsByName := make(map[string]*model.Subject, len(subjects))
	for _, sub := range subjects {
		subjectsByName[sub.Name] = sub
	}

	sessions := make([]model.StudySession, 0, len(planData.Sessions))
	for _, ps := range planData.Sessions {
		subject, ok := subjectsByName[ps.SubjectName]
		if !ok {
			logger.Warn("Dropping session for unknown subject",
				"subject_name", ps.SubjectName,
				"date", ps.Date,
			)
			continue
		}
		sessions = append(sessions, model.StudySession{
			SessionID:     uuid.New(),
			SubjectID:     subject.SubjectID,
			SubjectName:   ps.SubjectName,
			Date:          ps.Date,
			StartTime:     ps.StartTime,
			EndTime:       ps.EndTime,
			DurationHours: ps.DurationHours,
			SessionType:   ps.SessionType,
			Topics:        ps.Topics,
			CognitiveLoad: ps.CognitiveLoad,
			Color:         subject.Color,
		})
	}

	plan := &model.StudyPlan{
		PlanID:              uuid.New(),
		LearnerID:           learnerID,
		Sessions:            sessions,
		SubjectBreakdown:    planData.SubjectBreakdown,
		Recommendations:     planData.Recommendations,
		NextSteps:           planData.NextSteps,
		EstimatedCompletion: planData.EstimatedCompletion,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.planRepo.Upsert(ctx, tx, plan)
	})
	if err != nil {
		logger.Error("Failed to upsert study plan", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの保存に失敗しました。", "", err)
	}

	logger.Info("Study plan generated", "plan_id", plan.PlanID, "sessions", len(plan.Sessions))
	return plan, nil
}

// producePlanData はモデル連携プランナーを優先し、失敗したら決定論フォールバックを使います。
// フォールバックは失敗しない前提の最終手段です。
func (s *planService) producePlanData(ctx context.Context, logger *slog.Logger, learner *model.Learner, subjects []*model.Subject, startDate time.Time) *model.PlanData {
	if s.aiPlanner != nil {
		planData, err := s.aiPlanner.GeneratePlan(ctx, learner, subjects, startDate)
		if err == nil {
			logger.Info("Plan generated by AI planner")
			return planData
		}
		logger.Warn("AI planner failed, falling back to deterministic planner", "error", err)
	}

	planData, err := s.fallback.GeneratePlan(ctx, learner, subjects, startDate)
	if err != nil {
		// FallbackPlanner はエラーを返さないが、インターフェース上は起こり得る
		logger.Warn("Fallback planner returned error, using empty plan", "error", err)
		return &model.PlanData{SubjectBreakdown: map[string]model.SubjectBreakdown{}}
	}
	return planData
}

func (s *planService) GetPlan(ctx context.Context, learnerID uuid.UUID) (*model.StudyPlan, error) {
	plan, err := s.planRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プランがまだ生成されていません。", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to fetch study plan", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの取得に失敗しました。", "", err)
	}
	return plan, nil
}

// CompleteSession は指定セッションの完了フラグを立てます。
// プラン生成後にセッションが変更されるのはこのフラグだけです。
func (s *planService) CompleteSession(ctx context.Context, learnerID, sessionID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID, "session_id", sessionID)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plan, err := s.planRepo.FindByLearner(ctx, tx, learnerID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "プランがまだ生成されていません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to fetch plan for session completion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "プランの取得に失敗しました。", "", err)
		}

		found := false
		for i := range plan.Sessions {
			if plan.Sessions[i].SessionID == sessionID {
				plan.Sessions[i].Completed = true
				found = true
				break
			}
		}
		if !found {
			return model.NewAppError("NOT_FOUND", "セッションが見つかりません。", "", model.ErrNotFound)
		}

		if err := s.planRepo.Save(ctx, tx, plan); err != nil {
			logger.Error("Failed to save plan after session completion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの更新に失敗しました。", "", err)
		}

		logger.Info("Session marked as complete")
		return nil
	})
}

// GetStats は現在のプランと科目一覧から科目ごとの進捗集計を返します
func (s *planService) GetStats(ctx context.Context, learnerID uuid.UUID) ([]*model.SubjectStats, error) {
	logger := middleware.GetLogger(ctx).With("learner_id", learnerID)

	subjects, err := s.subjectRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to list subjects for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "科目一覧の取得に失敗しました。", "", err)
	}

	statsBySubject := make(map[uuid.UUID]*model.SubjectStats, len(subjects))
	stats := make([]*model.SubjectStats, 0, len(subjects))
	for _, sub := range subjects {
		st := &model.SubjectStats{
			SubjectID:       sub.SubjectID,
			Name:            sub.Name,
			ConfidenceLevel: sub.ConfidenceLevel,
		}
		statsBySubject[sub.SubjectID] = st
		stats = append(stats, st)
	}

	plan, err := s.planRepo.FindByLearner(ctx, s.db, learnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// プラン未生成でも統計は返す (全てゼロ)
			return stats, nil
		}
		logger.Error("Failed to fetch plan for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの取得に失敗しました。", "", err)
	}

	for _, session := range plan.Sessions {
		st, ok := statsBySubject[session.SubjectID]
		if !ok {
			continue
		}
		st.TotalSessions++
		st.TotalHours += session.DurationHours
		if session.Completed {
			st.CompletedSessions++
		}
	}

	return stats, nil
}

// ExportICS は現在のプランを iCalendar 形式で書き出します
func (s *planService) ExportICS(ctx context.Context, learnerID uuid.UUID) ([]byte, error) {
	plan, err := s.GetPlan(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if len(plan.Sessions) == 0 {
		return nil, model.NewAppError("NOT_FOUND", "エクスポートできるセッションがありません。", "", model.ErrNotFound)
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//EduBloom//AI Study Planner//EN\n")
	for _, session := range plan.Sessions {
		date := strings.ReplaceAll(session.Date, "-", "")
		start := strings.ReplaceAll(session.StartTime, ":", "") + "00"
		end := strings.ReplaceAll(session.EndTime, ":", "") + "00"

		b.WriteString("BEGIN:VEVENT\n")
		fmt.Fprintf(&b, "DTSTART:%sT%s\n", date, start)
		fmt.Fprintf(&b, "DTEND:%sT%s\n", date, end)
		fmt.Fprintf(&b, "SUMMARY:%s - %s\n", session.SubjectName, titleCase(session.SessionType))
		fmt.Fprintf(&b, "DESCRIPTION:Topics: %s\\nCognitive Load: %s\n", strings.Join(session.Topics, ", "), session.CognitiveLoad)
		fmt.Fprintf(&b, "UID:%s@edubloom\n", session.SessionID)
		b.WriteString("END:VEVENT\n")
	}
	b.WriteString("END:VCALENDAR")

	return []byte(b.String()), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
