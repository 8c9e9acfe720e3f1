// internal/handlers/plan_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_study_planner/internal/middleware"
	"go_5_study_planner/internal/model"
	"go_5_study_planner/internal/service"
	"go_5_study_planner/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PlanHandler struct {
	planService service.PlanService
	logger      *slog.Logger
}

func NewPlanHandler(planService service.PlanService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		logger:      logger.With(slog.String("handler", "PlanHandler")),
	}
}

// GeneratePlan は POST /api/v1/plan/generate に対応します
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	plan, err := h.planService.GeneratePlan(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, plan, logger)
}

// GetPlan は GET /api/v1/plan に対応します
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	plan, err := h.planService.GetPlan(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}

// CompleteSession は POST /api/v1/plan/sessions/{session_id}/complete に対応します
func (h *PlanHandler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "session_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_SESSION_ID", "セッションIDの形式が正しくありません。", "session_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.planService.CompleteSession(r.Context(), learnerID, sessionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "セッションを完了にしました。"}, logger)
}

// GetStats は GET /api/v1/plan/stats に対応します
func (h *PlanHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.planService.GetStats(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// ExportICS は GET /api/v1/plan/export/ics に対応します。
// JSONではなく iCalendar をそのまま返します。
func (h *PlanHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	ics, err := h.planService.ExportICS(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="study_plan.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(ics); err != nil {
		logger.Error("Failed to write ICS response", "error", err)
	}
}
