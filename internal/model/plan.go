// internal/model/plan.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// セッション種別 (学習フェーズ)
const (
	SessionTypeLearning = "learning"
	SessionTypePractice = "practice"
	SessionTypeRevision = "revision"
	SessionTypeBuffer   = "buffer"
)

// 認知負荷タグ
const (
	CognitiveLoadHigh   = "high"
	CognitiveLoadMedium = "medium"
	CognitiveLoadLow    = "low"
)

// StudySession は確定済みプランの1セッションを表します。
// プラン生成時にのみ作成され、以後は completed フラグだけが更新されます。
type StudySession struct {
	SessionID     uuid.UUID `json:"id"`
	SubjectID     uuid.UUID `json:"subject_id"`
	SubjectName   string    `json:"subject_name"`
	Date          string    `json:"date"`       // YYYY-MM-DD
	StartTime     string    `json:"start_time"` // HH:MM
	EndTime       string    `json:"end_time"`   // HH:MM
	DurationHours float64   `json:"duration_hours"`
	SessionType   string    `json:"session_type"`
	Topics        []string  `json:"topics"`
	CognitiveLoad string    `json:"cognitive_load"`
	Color         string    `json:"color"`
	Completed     bool      `json:"completed"`
}

// SubjectBreakdown は科目ごとの時間配分の内訳です。
// percentage は個別に丸めるため、全科目の合計が100になるとは限りません。
type SubjectBreakdown struct {
	TotalHours    float64 `json:"total_hours"`
	Percentage    int     `json:"percentage"`
	Justification string  `json:"justification"`
}

// StudyPlan は学習者ごとに1件だけ存在するプランです。
// 再生成時は全体が置き換えられます (マージはしない)。
type StudyPlan struct {
	PlanID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"plan_id"`
	LearnerID           uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	Sessions            []StudySession              `gorm:"serializer:json" json:"sessions"`
	SubjectBreakdown    map[string]SubjectBreakdown `gorm:"serializer:json" json:"subject_breakdown"`
	Recommendations     []string                    `gorm:"serializer:json" json:"recommendations"`
	NextSteps           []string                    `gorm:"serializer:json" json:"next_steps"`
	EstimatedCompletion string                      `json:"estimated_completion"` // YYYY-MM-DD
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

func (StudyPlan) TableName() string {
	return "study_plans"
}

// PlannedSession はプランナーが出力するセッションです。
// 科目は名前でしか参照しません。科目IDへの解決はサービス層が行い、
// 未知の科目名を持つセッションはそこで除外されます。
type PlannedSession struct {
	SubjectName   string   `json:"subject_name"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
	DurationHours float64  `json:"duration_hours"`
	SessionType   string   `json:"session_type"`
	Topics        []string `json:"topics"`
	CognitiveLoad string   `json:"cognitive_load"`
}

// PlanData はプランナー (決定論フォールバック / モデル連携) の共通出力形式です
type PlanData struct {
	Sessions            []PlannedSession            `json:"sessions"`
	SubjectBreakdown    map[string]SubjectBreakdown `json:"subject_breakdown"`
	Recommendations     []string                    `json:"recommendations"`
	NextSteps           []string                    `json:"next_steps"`
	EstimatedCompletion string                      `json:"estimated_completion"`
}
