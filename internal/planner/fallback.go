// internal/planner/fallback.go
package planner

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go_5_study_planner/internal/model"
)

// 配分ルールのデフォルト値。
// Config で上書きできますが、通常はこの値のまま使います。
const (
	DefaultHorizonDays       = 14   // プラン対象日数
	DefaultMaxSubjectsPerDay = 3    // 1日にセッションを割り当てる科目数の上限
	DefaultMaxSessionHours   = 2.0  // 1科目1日あたりのセッション時間の上限 (h)
	DefaultMinSessionHours   = 0.5  // これ未満のセッションは作らない (h)
	DefaultBreakMinutes      = 15   // セッション間の休憩 (分)
	DefaultNominalTotalHours = 42.0 // 内訳計算に使う2週間の名目合計時間 (h)
	DefaultConfidenceBoost   = 0.3  // 自信度ペナルティの重み
)

// 開始時刻のアンカー (分単位、0時起点)
var startTimeAnchors = map[string]int{
	"morning":   8 * 60,
	"afternoon": 14 * 60,
	"evening":   18 * 60,
	"night":     21 * 60,
}

// Config は配分ルールの設定です。ゼロ値のフィールドはデフォルト値になります。
type Config struct {
	HorizonDays       int
	MaxSubjectsPerDay int
	MaxSessionHours   float64
	MinSessionHours   float64
	BreakMinutes      int
	NominalTotalHours float64
	ConfidenceBoost   float64
}

func (c Config) withDefaults() Config {
	if c.HorizonDays <= 0 {
		c.HorizonDays = DefaultHorizonDays
	}
	if c.MaxSubjectsPerDay <= 0 {
		c.MaxSubjectsPerDay = DefaultMaxSubjectsPerDay
	}
	if c.MaxSessionHours <= 0 {
		c.MaxSessionHours = DefaultMaxSessionHours
	}
	if c.MinSessionHours <= 0 {
		c.MinSessionHours = DefaultMinSessionHours
	}
	if c.BreakMinutes <= 0 {
		c.BreakMinutes = DefaultBreakMinutes
	}
	if c.NominalTotalHours <= 0 {
		c.NominalTotalHours = DefaultNominalTotalHours
	}
	if c.ConfidenceBoost <= 0 {
		c.ConfidenceBoost = DefaultConfidenceBoost
	}
	return c
}

// FallbackPlanner はモデル連携なしで動作する決定論プランナーです。
// 同じ入力と開始日に対しては常に同じプランを返します (乱数・現在時刻への依存なし)。
type FallbackPlanner struct {
	cfg Config
}

func NewFallbackPlanner(cfg Config) *FallbackPlanner {
	return &FallbackPlanner{cfg: cfg.withDefaults()}
}

// GeneratePlan はプロフィールと科目一覧から2週間のプランを構築します。
// 科目が空でもエラーにはせず、空のプランを返します
// (空の科目集合を拒否するのは呼び出し側の責務)。
func (p *FallbackPlanner) GeneratePlan(_ context.Context, learner *model.Learner, subjects []*model.Subject, startDate time.Time) (*model.PlanData, error) {
	cfg := p.cfg
	ranked := rankSubjects(subjects)

	plan := &model.PlanData{
		SubjectBreakdown:    p.buildBreakdown(subjects),
		Recommendations:     defaultRecommendations(),
		NextSteps:           defaultNextSteps(ranked),
		EstimatedCompletion: startDate.AddDate(0, 0, cfg.HorizonDays).Format("2006-01-02"),
	}

	if len(ranked) == 0 {
		return plan, nil
	}

	anchor, ok := startTimeAnchors[learner.PreferredStudyTime]
	if !ok {
		anchor = startTimeAnchors["evening"]
	}

	// 科目の優先順位は全期間で固定。日ごとに再計算はしません。
	perDay := len(ranked)
	if perDay > cfg.MaxSubjectsPerDay {
		perDay = cfg.MaxSubjectsPerDay
	}

	for dayOffset := 0; dayOffset < cfg.HorizonDays; dayOffset++ {
		date := startDate.AddDate(0, 0, dayOffset)
		dailyHours := learner.WeekdayHours
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			dailyHours = learner.WeekendHours
		}

		// 当日の予算を対象科目数で均等割り
		hoursPerSubject := dailyHours / float64(perDay)
		currentMinute := anchor

		for _, subject := range ranked[:perDay] {
			if hoursPerSubject < cfg.MinSessionHours {
				continue // 端数だけのセッションは作らない
			}

			duration := math.Min(hoursPerSubject, cfg.MaxSessionHours)
			endMinute := currentMinute + int(math.Round(duration*60))

			plan.Sessions = append(plan.Sessions, model.PlannedSession{
				SubjectName:   subject.Name,
				Date:          date.Format("2006-01-02"),
				StartTime:     formatMinute(currentMinute),
				EndTime:       formatMinute(endMinute),
				DurationHours: duration,
				SessionType:   sessionTypeForDay(dayOffset),
				Topics:        topicsForDay(subject, dayOffset),
				CognitiveLoad: cognitiveLoadFor(subject),
			})

			currentMinute = endMinute + cfg.BreakMinutes
		}
	}

	return plan, nil
}

// rankSubjects は科目を優先度順 (自信度が低い順、同値なら単位数が多い順) に並べます。
// 入力スライスは変更しません。
func rankSubjects(subjects []*model.Subject) []*model.Subject {
	ranked := make([]*model.Subject, len(subjects))
	copy(ranked, subjects)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ConfidenceLevel != ranked[j].ConfidenceLevel {
			return ranked[i].ConfidenceLevel < ranked[j].ConfidenceLevel
		}
		return ranked[i].Credits > ranked[j].Credits
	})
	return ranked
}

// buildBreakdown は科目ごとの配分内訳を計算します。
// 単位数の合計が0の場合は内訳なし (空マップ) を返します。
// ペナルティ適用後の比率は再正規化しないため、時間の合計が
// 名目合計時間と一致するとは限りません。
func (p *FallbackPlanner) buildBreakdown(subjects []*model.Subject) map[string]model.SubjectBreakdown {
	breakdown := make(map[string]model.SubjectBreakdown)

	totalCredits := 0
	for _, s := range subjects {
		totalCredits += s.Credits
	}
	if totalCredits == 0 {
		return breakdown
	}

	for _, s := range subjects {
		creditRatio := float64(s.Credits) / float64(totalCredits)
		// 自信がないほどペナルティが大きく、配分時間が増える
		confidenceMultiplier := float64(6-s.ConfidenceLevel) / 5
		adjustedRatio := creditRatio * (1 + confidenceMultiplier*p.cfg.ConfidenceBoost)

		amount := "Standard"
		level := "moderate"
		if s.ConfidenceLevel <= 2 {
			amount = "More"
			level = "low"
		}

		breakdown[s.Name] = model.SubjectBreakdown{
			TotalHours:    math.Round(adjustedRatio*p.cfg.NominalTotalHours*10) / 10,
			Percentage:    int(math.Round(adjustedRatio * 100)),
			Justification: fmt.Sprintf("%s time allocated due to %s confidence and %d credits", amount, level, s.Credits),
		}
	}

	return breakdown
}

// sessionTypeForDay は週フェーズから固定でセッション種別を決めます
func sessionTypeForDay(dayOffset int) string {
	switch {
	case dayOffset < 5:
		return model.SessionTypeLearning
	case dayOffset < 10:
		return model.SessionTypePractice
	default:
		return model.SessionTypeRevision
	}
}

// topicsForDay は前半1週間は弱点トピック、後半は得意トピックを最大2件返します
func topicsForDay(subject *model.Subject, dayOffset int) []string {
	source := subject.WeakAreas
	if dayOffset >= 7 {
		source = subject.StrongAreas
	}
	n := len(source)
	if n > 2 {
		n = 2
	}
	return append([]string{}, source[:n]...)
}

// フォールバックは high / medium のみを出します (low は出しません)
func cognitiveLoadFor(subject *model.Subject) string {
	if subject.ConfidenceLevel <= 2 {
		return model.CognitiveLoadHigh
	}
	return model.CognitiveLoadMedium
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", (m/60)%24, m%60)
}

func defaultRecommendations() []string {
	return []string{
		"Focus on weak areas first before moving to practice",
		"Take short breaks between high-intensity sessions",
		"Review notes before each study session",
	}
}

func defaultNextSteps(ranked []*model.Subject) []string {
	first := "your weakest subject"
	if len(ranked) > 0 {
		first = ranked[0].Name
	}
	return []string{
		fmt.Sprintf("Start with %s", first),
		"Complete foundational concepts before advanced topics",
		"Use active recall techniques for better retention",
	}
}
