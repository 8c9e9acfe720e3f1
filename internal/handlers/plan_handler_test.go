// internal/handlers/plan_handler_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_study_planner/internal/handlers"
	"go_5_study_planner/internal/model"
	servicemocks "go_5_study_planner/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// 認証ミドルウェア通過後の状態を再現するため、コンテキストに学習者IDを入れる
func withLearnerID(r *http.Request, learnerID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
	return r.WithContext(ctx)
}

func setupPlanRouter(mockService *servicemocks.PlanService) chi.Router {
	h := handlers.NewPlanHandler(mockService, testLogger)
	r := chi.NewRouter()
	r.Route("/plan", func(r chi.Router) {
		r.Post("/generate", h.GeneratePlan)
		r.Get("/", h.GetPlan)
		r.Get("/stats", h.GetStats)
		r.Get("/export/ics", h.ExportICS)
		r.Post("/sessions/{session_id}/complete", h.CompleteSession)
	})
	return r
}

func TestPlanHandler_GeneratePlan(t *testing.T) {
	learnerID := uuid.New()

	tests := []struct {
		name       string
		setupMock  func(m *servicemocks.PlanService)
		wantStatus int
		wantCode   string // エラー時のみ検証
	}{
		{
			name: "正常系: プラン生成で201",
			setupMock: func(m *servicemocks.PlanService) {
				m.On("GeneratePlan", mock.Anything, learnerID).
					Return(&model.StudyPlan{PlanID: uuid.New(), LearnerID: learnerID}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "異常系: 科目未登録で400",
			setupMock: func(m *servicemocks.PlanService) {
				m.On("GeneratePlan", mock.Anything, learnerID).
					Return(nil, model.NewAppError("NO_SUBJECTS", "プランを生成する前に科目を1つ以上登録してください。", "", model.ErrInvalidInput)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "NO_SUBJECTS",
		},
		{
			name: "異常系: サービス内部エラーで500",
			setupMock: func(m *servicemocks.PlanService) {
				m.On("GeneratePlan", mock.Anything, learnerID).
					Return(nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プランの保存に失敗しました。", "", model.ErrInternalServer)).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(servicemocks.PlanService)
			tt.setupMock(mockService)
			router := setupPlanRouter(mockService)

			req := httptest.NewRequest(http.MethodPost, "/plan/generate", nil)
			req = withLearnerID(req, learnerID)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.wantCode, errResp.Error.Code)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestPlanHandler_GetPlan(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: プラン取得で200", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		plan := &model.StudyPlan{
			PlanID:              uuid.New(),
			LearnerID:           learnerID,
			EstimatedCompletion: "2025-01-20",
		}
		mockService.On("GetPlan", mock.Anything, learnerID).Return(plan, nil).Once()

		router := setupPlanRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/plan/", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.StudyPlan
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, plan.PlanID, got.PlanID)
		assert.Equal(t, "2025-01-20", got.EstimatedCompletion)
	})

	t.Run("異常系: プラン未生成で404", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		mockService.On("GetPlan", mock.Anything, learnerID).
			Return(nil, model.NewAppError("NOT_FOUND", "プランがまだ生成されていません。", "", model.ErrNotFound)).Once()

		router := setupPlanRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/plan/", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("異常系: 認証情報なしで500", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		router := setupPlanRouter(mockService)

		// コンテキストに学習者IDを入れない (ミドルウェア欠落相当)
		req := httptest.NewRequest(http.MethodGet, "/plan/", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockService.AssertNotCalled(t, "GetPlan", mock.Anything, mock.Anything)
	})
}

func TestPlanHandler_CompleteSession(t *testing.T) {
	learnerID := uuid.New()
	sessionID := uuid.New()

	t.Run("正常系: セッション完了で200", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		mockService.On("CompleteSession", mock.Anything, learnerID, sessionID).Return(nil).Once()

		router := setupPlanRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodPost, "/plan/sessions/"+sessionID.String()+"/complete", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: セッションIDが不正な形式で400", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		router := setupPlanRouter(mockService)

		req := withLearnerID(httptest.NewRequest(http.MethodPost, "/plan/sessions/not-a-uuid/complete", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CompleteSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 存在しないセッションで404", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		mockService.On("CompleteSession", mock.Anything, learnerID, sessionID).
			Return(model.NewAppError("NOT_FOUND", "セッションが見つかりません。", "", model.ErrNotFound)).Once()

		router := setupPlanRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodPost, "/plan/sessions/"+sessionID.String()+"/complete", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPlanHandler_ExportICS(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: text/calendarで返す", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		ics := []byte("BEGIN:VCALENDAR\nVERSION:2.0\nEND:VCALENDAR")
		mockService.On("ExportICS", mock.Anything, learnerID).Return(ics, nil).Once()

		router := setupPlanRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/plan/export/ics", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/calendar")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "study_plan.ics")
		assert.Equal(t, string(ics), rec.Body.String())
	})
}

func TestPlanHandler_GetStats(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: 集計結果を返す", func(t *testing.T) {
		mockService := new(servicemocks.PlanService)
		stats := []*model.SubjectStats{
			{SubjectID: uuid.New(), Name: "OS", TotalSessions: 5, CompletedSessions: 2, TotalHours: 8},
		}
		mockService.On("GetStats", mock.Anything, learnerID).Return(stats, nil).Once()

		router := setupPlanRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/plan/stats", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []*model.SubjectStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "OS", got[0].Name)
		assert.Equal(t, 5, got[0].TotalSessions)
	})
}
