// internal/planner/planner.go
package planner

import (
	"context"
	"time"

	"go_5_study_planner/internal/model"
)

// Planner はプロフィールと科目一覧から2週間分のプランデータを生成します。
// 実装はモデル連携プランナーと決定論フォールバックの2種類があり、
// どちらも同じ PlanData 形式を返します。startDate がプラン初日になります。
type Planner interface {
	GeneratePlan(ctx context.Context, learner *model.Learner, subjects []*model.Subject, startDate time.Time) (*model.PlanData, error)
}
