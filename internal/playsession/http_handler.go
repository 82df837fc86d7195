package playsession

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gamehub/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Sessions handles the /sessions root: POST starts a session, GET lists
// the user's history.
func (h *HTTPHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.start(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SessionsSub handles POST /sessions/{id}/end.
func (h *HTTPHandler) SessionsSub(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts[0] == "sessions"
	if len(parts) == 3 && parts[2] == "end" && r.Method == http.MethodPost {
		h.end(w, r, parts[1])
		return
	}
	http.NotFound(w, r)
}

type startSessionReq struct {
	GameID string `json:"game_id" validate:"required"`
}

// @Summary Start a play session
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body startSessionReq true "Game to play"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /sessions [post]
func (h *HTTPHandler) start(w http.ResponseWriter, r *http.Request) {
	var req startSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	sess, err := h.service.Start(r.Context(), httpx.UserIDFrom(r), req.GameID)
	if err != nil {
		if errors.Is(err, ErrAlreadyActive) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_ACTIVE", "A play session is already active for this game", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, sess)
}

type endSessionReq struct {
	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}

// @Summary End a play session
// @Tags sessions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Session ID"
// @Param request body endSessionReq false "Optional session notes"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /sessions/{id}/end [post]
func (h *HTTPHandler) end(w http.ResponseWriter, r *http.Request, sessionID string) {
	var req endSessionReq
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
			return
		}
		if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
			return
		}
	}

	sess, err := h.service.End(r.Context(), httpx.UserIDFrom(r), sessionID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Play session not found", nil)
		case errors.Is(err, ErrAlreadyEnded):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_ENDED", "Play session already ended", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, sess, nil)
}

// @Summary List play sessions
// @Tags sessions
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /sessions [get]
func (h *HTTPHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.ListByUser(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	httpx.JSONSuccess(w, r, sessions, map[string]any{"count": len(sessions)})
}
