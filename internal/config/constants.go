// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "EduBloomAPI"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultReviewLimit    = 20
	DefaultAccessTokenTTL = 24 * time.Hour
	DefaultAIModel        = "gpt-4o-mini"
)
