// internal/handlers/subject_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/service"
	"go_5_study_planner/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SubjectHandler struct {
	subjectService service.SubjectService
	logger         *slog.Logger
}

func NewSubjectHandler(subjectService service.SubjectService, logger *slog.Logger) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
		logger:         logger.With(slog.String("handler", "SubjectHandler")),
	}
}

// URLパラメータから科目IDを取り出すヘルパー
func subjectIDFromURL(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "subject_id")
	subjectID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_SUBJECT_ID", "科目IDの形式が正しくありません。", "subject_id", model.ErrInvalidInput)
	}
	return subjectID, nil
}

// CreateSubject は POST /api/v1/subjects に対応します
func (h *SubjectHandler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostSubjectRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	subject, err := h.subjectService.CreateSubject(r.Context(), learnerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, subject, logger)
}

// ListSubjects は GET /api/v1/subjects に対応します
func (h *SubjectHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	subjects, err := h.subjectService.ListSubjects(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, subjects, logger)
}

// GetSubject は GET /api/v1/subjects/{subject_id} に対応します
func (h *SubjectHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	subjectID, err := subjectIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	subject, err := h.subjectService.GetSubject(r.Context(), learnerID, subjectID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, subject, logger)
}

// UpdateSubject は PATCH /api/v1/subjects/{subject_id} に対応します
func (h *SubjectHandler) UpdateSubject(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	subjectID, err := subjectIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchSubjectRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	subject, err := h.subjectService.UpdateSubject(r.Context(), learnerID, subjectID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, subject, logger)
}

// DeleteSubject は DELETE /api/v1/subjects/{subject_id} に対応します
func (h *SubjectHandler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	subjectID, err := subjectIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.subjectService.DeleteSubject(r.Context(), learnerID, subjectID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateConfidence は POST /api/v1/progress/confidence に対応します
func (h *SubjectHandler) UpdateConfidence(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateConfidenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.subjectService.UpdateConfidence(r.Context(), learnerID, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "自信度を更新しました。"}, logger)
}

// GetProgressHistory は GET /api/v1/progress/history に対応します
func (h *SubjectHandler) GetProgressHistory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entries, err := h.subjectService.GetProgressHistory(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}
