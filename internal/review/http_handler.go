package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"gamehub/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReviewReq struct {
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Content *string `json:"content" validate:"omitempty,max=5000"`
}

// @Summary Write a review for a game
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param gameID path string true "Game ID"
// @Param request body createReviewReq true "Review"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /games/{gameID}/reviews [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request, gameID string) {
	var req createReviewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	rv, err := h.service.Create(r.Context(), httpx.UserIDFrom(r), gameID, req.Rating, req.Content)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "You have already reviewed this game", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, rv)
}

// @Summary List a game's reviews
// @Tags reviews
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} httpx.SuccessResponse
// @Router /games/{gameID}/reviews [get]
func (h *HTTPHandler) ListByGame(w http.ResponseWriter, r *http.Request, gameID string) {
	reviews, err := h.service.ListByGame(r.Context(), gameID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if reviews == nil {
		reviews = []WithAuthor{}
	}

	httpx.JSONSuccess(w, r, reviews, map[string]any{"count": len(reviews)})
}

// @Summary Delete own review
// @Tags reviews
// @Security Bearer
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request, reviewID string) {
	if err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), reviewID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
