package achievement

import (
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

// @Summary List a game's achievements
// @Tags achievements
// @Produce json
// @Param gameID path string true "Game ID"
// @Success 200 {object} httpx.SuccessResponse
// @Router /games/{gameID}/achievements [get]
func (h *HTTPHandler) ListByGame(w http.ResponseWriter, r *http.Request, gameID string) {
	achievements, err := h.service.ListByGame(r.Context(), gameID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if achievements == nil {
		achievements = []Achievement{}
	}

	httpx.JSONSuccess(w, r, achievements, map[string]any{"count": len(achievements)})
}

// @Summary Complete an achievement
// @Description Mark an achievement as earned by the authenticated user
// @Tags achievements
// @Produce json
// @Security Bearer
// @Param id path string true "Achievement ID"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /achievements/{id}/complete [post]
func (h *HTTPHandler) Complete(w http.ResponseWriter, r *http.Request, achievementID string) {
	earned, err := h.service.Complete(r.Context(), httpx.UserIDFrom(r), achievementID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Achievement not found", nil)
		case errors.Is(err, ErrAlreadyCompleted):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_COMPLETED", "Achievement already completed", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, r, earned)
}

// @Summary List earned achievements for a collection game
// @Tags achievements
// @Produce json
// @Security Bearer
// @Param gameID path string true "Game ID"
// @Success 200 {object} httpx.SuccessResponse
// @Router /collection/{gameID}/achievements [get]
func (h *HTTPHandler) ListEarned(w http.ResponseWriter, r *http.Request, gameID string) {
	earned, err := h.service.ListEarned(r.Context(), httpx.UserIDFrom(r), gameID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if earned == nil {
		earned = []Earned{}
	}

	httpx.JSONSuccess(w, r, earned, map[string]any{"count": len(earned)})
}
