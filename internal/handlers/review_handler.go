// internal/handlers/review_handler.go
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

type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *slog.Logger
}

func NewReviewHandler(reviewService service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("handler", "ReviewHandler")),
	}
}

func deckIDFromURL(r *http.Request) (uuid.UUID, error) {
	deckID, err := uuid.Parse(chi.URLParam(r, "deck_id"))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_DECK_ID", "デッキIDの形式が正しくありません。", "deck_id", model.ErrInvalidInput)
	}
	return deckID, nil
}

func cardIDFromURL(r *http.Request) (uuid.UUID, error) {
	cardID, err := uuid.Parse(chi.URLParam(r, "card_id"))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_CARD_ID", "カードIDの形式が正しくありません。", "card_id", model.ErrInvalidInput)
	}
	return cardID, nil
}

// CreateDeck は POST /api/v1/decks に対応します
func (h *ReviewHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostDeckRequest
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

	deck, err := h.reviewService.CreateDeck(r.Context(), learnerID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, deck, logger)
}

// ListDecks は GET /api/v1/decks に対応します
func (h *ReviewHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	decks, err := h.reviewService.ListDecks(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, decks, logger)
}

// DeleteDeck は DELETE /api/v1/decks/{deck_id} に対応します
func (h *ReviewHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	deckID, err := deckIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.reviewService.DeleteDeck(r.Context(), learnerID, deckID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCard は POST /api/v1/decks/{deck_id}/cards に対応します
func (h *ReviewHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	deckID, err := deckIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PostFlashcardRequest
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

	card, err := h.reviewService.CreateCard(r.Context(), learnerID, deckID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// ListCards は GET /api/v1/decks/{deck_id}/cards に対応します
func (h *ReviewHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	deckID, err := deckIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.reviewService.ListCards(r.Context(), learnerID, deckID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// DeleteCard は DELETE /api/v1/cards/{card_id} に対応します
func (h *ReviewHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cardID, err := cardIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.reviewService.DeleteCard(r.Context(), learnerID, cardID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDueCards は GET /api/v1/review/due に対応します
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cards, err := h.reviewService.GetDueCards(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// ReviewCard は POST /api/v1/cards/{card_id}/review に対応します
func (h *ReviewHandler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	learnerID, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	cardID, err := cardIDFromURL(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.ReviewFlashcardRequest
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

	resp, err := h.reviewService.ReviewCard(r.Context(), learnerID, cardID, *req.Difficulty)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
