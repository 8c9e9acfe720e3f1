// internal/srs/srs.go
//
// srs はフラッシュカードの次回復習時刻を計算します。
// 完全なSM-2ではなく、評価だけから間隔を引く簡易版です
// (難易度係数やカードごとの間隔履歴は持ちません)。
// 純粋関数のみで、状態もI/Oも持ちません。
package srs

import "time"

// Rating は復習直後の自己評価です
type Rating int

const (
	Again Rating = iota // 0: もう一度 (1分後)
	Hard                // 1: 難しい (10分後)
	Good                // 2: 普通 (1日後)
	Easy                // 3: 簡単 (3日後)
)

// DefaultInterval は範囲外の評価に適用される間隔 (1日) です
const DefaultInterval = 1440 * time.Minute

// 評価ごとの固定間隔テーブル (分)
var intervals = [...]time.Duration{
	Again: 1 * time.Minute,
	Hard:  10 * time.Minute,
	Good:  1440 * time.Minute,
	Easy:  4320 * time.Minute,
}

// IsValid は r が定義済みの評価かどうかを返します
func (r Rating) IsValid() bool {
	return r >= Again && r <= Easy
}

func (r Rating) String() string {
	switch r {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	}
	return "unknown"
}

// Interval は評価に対応する復習間隔を返します。
// 範囲外の評価は拒否せず DefaultInterval にフォールバックします。
// 厳密なバリデーションが必要な呼び出し側は事前に IsValid で検証してください。
func Interval(r Rating) time.Duration {
	if !r.IsValid() {
		return DefaultInterval
	}
	return intervals[r]
}

// NextReview は now から次回復習時刻を計算します
func NextReview(now time.Time, r Rating) time.Time {
	return now.Add(Interval(r))
}
