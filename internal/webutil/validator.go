// internal/webutil/validator.go
package webutil

import (
	"log"
	"reflect"
	"strings"

	"go_5_study_planner/internal/model"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":                 "名前",
	"email":                "メールアドレス",
	"password":             "パスワード",
	"credits":              "単位数",
	"confidence_level":     "自信度",
	"new_confidence":       "自信度",
	"weekday_hours":        "平日の学習時間",
	"weekend_hours":        "週末の学習時間",
	"preferred_study_time": "希望学習時間帯",
	"target_date":          "目標日",
	"front":                "表面",
	"back":                 "裏面",
	"difficulty":           "難易度",
	// ... 他のフィールドもここに追加 ...
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// 個別のエラーメッセージを上書き・カスタマイズ
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName)
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")

	// パラメータ付きタグはテンプレートに {1} を使う
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := fe.Field()
			translatedFieldName, ok := fieldNameTranslations[fieldName]
			if !ok {
				translatedFieldName = fieldName
			}
			t, _ := ut.T(tag, translatedFieldName, fe.Param())
			return t
		})
	}

	registerParamTranslation("min", "{0}は{1}以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}以下で入力してください。")
	registerParamTranslation("oneof", "{0}は次のいずれかを指定してください: {1}")
}

// NewValidationErrorResponse はバリデーションエラーを AppError に変換します。
// 最初のエラーを代表としてクライアントに返します。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	firstErr := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		firstErr.Translate(Trans),
		firstErr.Field(),
		model.ErrInvalidInput,
	)
}
