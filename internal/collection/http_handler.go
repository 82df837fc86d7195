package collection

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gamehub/internal/game"
	"gamehub/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Collection handles the /collection root: POST adds a game, GET lists.
func (h *HTTPHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.addGame(w, r)
	case http.MethodGet:
		h.listGames(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// CollectionItem handles /collection/{gameID} and its status/rating/notes
// sub-resources.
func (h *HTTPHandler) CollectionItem(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts[0] == "collection"
	switch {
	case len(parts) == 2 && r.Method == http.MethodDelete:
		h.removeGame(w, r, parts[1])
	case len(parts) == 3 && r.Method == http.MethodPut && parts[2] == "status":
		h.updateStatus(w, r, parts[1])
	case len(parts) == 3 && r.Method == http.MethodPut && parts[2] == "rating":
		h.updateRating(w, r, parts[1])
	case len(parts) == 3 && r.Method == http.MethodPut && parts[2] == "notes":
		h.updateNotes(w, r, parts[1])
	default:
		http.NotFound(w, r)
	}
}

type addGameReq struct {
	ExternalAPIID string `json:"external_api_id" validate:"required"`
	PlayStatus    string `json:"play_status" validate:"omitempty,oneof=NOT_STARTED PLAYING COMPLETED ABANDONED"`
}

// @Summary Add a game to the collection
// @Description Import the game's catalog metadata and add it to the authenticated user's collection
// @Tags collection
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body addGameReq true "Game to add"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /collection [post]
func (h *HTTPHandler) addGame(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	var req addGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	entry, err := h.service.Add(r.Context(), userID, req.ExternalAPIID, req.PlayStatus)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Game not found in catalog", nil)
		case errors.Is(err, ErrAlreadyExists):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Game already in collection", nil)
		case errors.Is(err, ErrInvalidStatus):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid play status", nil)
		default:
			game.WriteUpstreamError(w, r, err)
		}
		return
	}

	httpx.JSONSuccessCreated(w, r, entry)
}

// @Summary List the collection
// @Tags collection
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /collection [get]
func (h *HTTPHandler) listGames(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if entries == nil {
		entries = []EntryWithGame{}
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{"count": len(entries)})
}

type statusUpdateReq struct {
	PlayStatus string `json:"play_status" validate:"required,oneof=NOT_STARTED PLAYING COMPLETED ABANDONED"`
}

// @Summary Update play status
// @Tags collection
// @Accept json
// @Produce json
// @Security Bearer
// @Param gameID path string true "Game ID"
// @Param request body statusUpdateReq true "New play status"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /collection/{gameID}/status [put]
func (h *HTTPHandler) updateStatus(w http.ResponseWriter, r *http.Request, gameID string) {
	var req statusUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	h.writeUpdateResult(w, r, h.service.UpdateStatus(r.Context(), httpx.UserIDFrom(r), gameID, req.PlayStatus))
}

type ratingUpdateReq struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// @Summary Update personal rating
// @Tags collection
// @Accept json
// @Produce json
// @Security Bearer
// @Param gameID path string true "Game ID"
// @Param request body ratingUpdateReq true "Personal rating 1..5"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /collection/{gameID}/rating [put]
func (h *HTTPHandler) updateRating(w http.ResponseWriter, r *http.Request, gameID string) {
	var req ratingUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	h.writeUpdateResult(w, r, h.service.UpdateRating(r.Context(), httpx.UserIDFrom(r), gameID, req.Rating))
}

type notesUpdateReq struct {
	PersonalNotes *string `json:"personal_notes"`
}

// @Summary Update personal notes
// @Tags collection
// @Accept json
// @Produce json
// @Security Bearer
// @Param gameID path string true "Game ID"
// @Param request body notesUpdateReq true "Notes, null to clear"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /collection/{gameID}/notes [put]
func (h *HTTPHandler) updateNotes(w http.ResponseWriter, r *http.Request, gameID string) {
	var req notesUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	h.writeUpdateResult(w, r, h.service.UpdateNotes(r.Context(), httpx.UserIDFrom(r), gameID, req.PersonalNotes))
}

// @Summary Remove a game from the collection
// @Tags collection
// @Security Bearer
// @Param gameID path string true "Game ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /collection/{gameID} [delete]
func (h *HTTPHandler) removeGame(w http.ResponseWriter, r *http.Request, gameID string) {
	h.writeUpdateResult(w, r, h.service.Remove(r.Context(), httpx.UserIDFrom(r), gameID))
}

func (h *HTTPHandler) writeUpdateResult(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Game not in collection", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
