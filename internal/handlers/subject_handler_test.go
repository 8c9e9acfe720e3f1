// internal/handlers/subject_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
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

func setupSubjectRouter(mockService *servicemocks.SubjectService) chi.Router {
	h := handlers.NewSubjectHandler(mockService, testLogger)
	r := chi.NewRouter()
	r.Route("/subjects", func(r chi.Router) {
		r.Post("/", h.CreateSubject)
		r.Get("/", h.ListSubjects)
		r.Get("/{subject_id}", h.GetSubject)
		r.Patch("/{subject_id}", h.UpdateSubject)
		r.Delete("/{subject_id}", h.DeleteSubject)
	})
	r.Route("/progress", func(r chi.Router) {
		r.Post("/confidence", h.UpdateConfidence)
		r.Get("/history", h.GetProgressHistory)
	})
	return r
}

func TestSubjectHandler_CreateSubject(t *testing.T) {
	learnerID := uuid.New()

	validBody := `{"name":"Data Structures","credits":4,"confidence_level":2,"weak_areas":["Trees"],"strong_areas":["Arrays"]}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *servicemocks.SubjectService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系: 科目作成で201",
			body: validBody,
			setupMock: func(m *servicemocks.SubjectService) {
				m.On("CreateSubject", mock.Anything, learnerID, mock.AnythingOfType("*model.PostSubjectRequest")).
					Return(&model.Subject{
						SubjectID:       uuid.New(),
						Name:            "Data Structures",
						Credits:         4,
						ConfidenceLevel: 2,
						Color:           "#6366F1",
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "異常系: 名前が空でバリデーションエラー",
			body:       `{"name":"","credits":4,"confidence_level":2}`,
			setupMock:  func(m *servicemocks.SubjectService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 自信度が範囲外でバリデーションエラー",
			body:       `{"name":"OS","credits":4,"confidence_level":6}`,
			setupMock:  func(m *servicemocks.SubjectService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "異常系: 不正なJSONで400",
			body:       `{invalid json`,
			setupMock:  func(m *servicemocks.SubjectService) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 同名科目の重複で409",
			body: validBody,
			setupMock: func(m *servicemocks.SubjectService) {
				m.On("CreateSubject", mock.Anything, learnerID, mock.AnythingOfType("*model.PostSubjectRequest")).
					Return(nil, model.NewAppError("DUPLICATE_SUBJECT", "同じ名前の科目が既に登録されています。", "name", model.ErrConflict)).Once()
			},
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_SUBJECT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(servicemocks.SubjectService)
			tt.setupMock(mockService)
			router := setupSubjectRouter(mockService)

			req := httptest.NewRequest(http.MethodPost, "/subjects/", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
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

func TestSubjectHandler_GetSubject(t *testing.T) {
	learnerID := uuid.New()
	subjectID := uuid.New()

	t.Run("正常系: 科目取得で200", func(t *testing.T) {
		mockService := new(servicemocks.SubjectService)
		mockService.On("GetSubject", mock.Anything, learnerID, subjectID).
			Return(&model.Subject{SubjectID: subjectID, Name: "OS"}, nil).Once()

		router := setupSubjectRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/subjects/"+subjectID.String(), nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got model.Subject
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, subjectID, got.SubjectID)
	})

	t.Run("異常系: IDが不正な形式で400", func(t *testing.T) {
		mockService := new(servicemocks.SubjectService)
		router := setupSubjectRouter(mockService)

		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/subjects/not-a-uuid", nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetSubject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 存在しない科目で404", func(t *testing.T) {
		mockService := new(servicemocks.SubjectService)
		mockService.On("GetSubject", mock.Anything, learnerID, subjectID).
			Return(nil, model.NewAppError("NOT_FOUND", "科目が見つかりません。", "", model.ErrNotFound)).Once()

		router := setupSubjectRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodGet, "/subjects/"+subjectID.String(), nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSubjectHandler_DeleteSubject(t *testing.T) {
	learnerID := uuid.New()
	subjectID := uuid.New()

	t.Run("正常系: 削除で204", func(t *testing.T) {
		mockService := new(servicemocks.SubjectService)
		mockService.On("DeleteSubject", mock.Anything, learnerID, subjectID).Return(nil).Once()

		router := setupSubjectRouter(mockService)
		req := withLearnerID(httptest.NewRequest(http.MethodDelete, "/subjects/"+subjectID.String(), nil), learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		mockService.AssertExpectations(t)
	})
}

func TestSubjectHandler_UpdateConfidence(t *testing.T) {
	learnerID := uuid.New()
	subjectID := uuid.New()

	t.Run("正常系: 自信度更新で200", func(t *testing.T) {
		mockService := new(servicemocks.SubjectService)
		mockService.On("UpdateConfidence", mock.Anything, learnerID, mock.AnythingOfType("*model.UpdateConfidenceRequest")).
			Return(nil).Once()

		body := `{"subject_id":"` + subjectID.String() + `","new_confidence":4}`
		router := setupSubjectRouter(mockService)
		req := httptest.NewRequest(http.MethodPost, "/progress/confidence", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req = withLearnerID(req, learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: 自信度が範囲外で400", func(t *testing.T) {
		mockService := new(servicemocks.SubjectService)
		router := setupSubjectRouter(mockService)

		body := `{"subject_id":"` + subjectID.String() + `","new_confidence":9}`
		req := httptest.NewRequest(http.MethodPost, "/progress/confidence", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req = withLearnerID(req, learnerID)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "UpdateConfidence", mock.Anything, mock.Anything, mock.Anything)
	})
}
