package friendship

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gamehub/internal/httpx"
	"gamehub/internal/user"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Friends handles the /friends root: POST sends a request, GET lists
// confirmed friends.
func (h *HTTPHandler) Friends(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.sendRequest(w, r)
	case http.MethodGet:
		h.listFriends(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// FriendsSub handles /friends/requests, /friends/{id}/accept and
// DELETE /friends/{id}.
func (h *HTTPHandler) FriendsSub(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts[0] == "friends"
	switch {
	case len(parts) == 2 && parts[1] == "requests" && r.Method == http.MethodGet:
		h.listPending(w, r)
	case len(parts) == 3 && parts[2] == "accept" && r.Method == http.MethodPost:
		h.accept(w, r, parts[1])
	case len(parts) == 2 && r.Method == http.MethodDelete:
		h.remove(w, r, parts[1])
	default:
		http.NotFound(w, r)
	}
}

type friendRequestReq struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
}

// @Summary Send a friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body friendRequestReq true "Target username"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /friends [post]
func (h *HTTPHandler) sendRequest(w http.ResponseWriter, r *http.Request) {
	var req friendRequestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	f, err := h.service.Request(r.Context(), httpx.UserIDFrom(r), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
		case errors.Is(err, ErrSelfRequest):
			httpx.JSONError(w, r, http.StatusBadRequest, "SELF_REQUEST", "Cannot send a friend request to yourself", nil)
		case errors.Is(err, ErrAlreadyExists):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Friendship already exists", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, r, f)
}

// @Summary List friends
// @Tags friends
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /friends [get]
func (h *HTTPHandler) listFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.service.ListFriends(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if friends == nil {
		friends = []Friend{}
	}

	httpx.JSONSuccess(w, r, friends, map[string]any{"count": len(friends)})
}

// @Summary List incoming friend requests
// @Tags friends
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Router /friends/requests [get]
func (h *HTTPHandler) listPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListPending(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if requests == nil {
		requests = []Request{}
	}

	httpx.JSONSuccess(w, r, requests, map[string]any{"count": len(requests)})
}

// @Summary Accept a friend request
// @Tags friends
// @Produce json
// @Security Bearer
// @Param id path string true "Friendship ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /friends/{id}/accept [post]
func (h *HTTPHandler) accept(w http.ResponseWriter, r *http.Request, friendshipID string) {
	f, err := h.service.Accept(r.Context(), httpx.UserIDFrom(r), friendshipID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Friend request not found", nil)
		case errors.Is(err, ErrNotPending):
			httpx.JSONError(w, r, http.StatusConflict, "NOT_PENDING", "Friend request is not pending", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, f, nil)
}

// @Summary Remove a friend or cancel a request
// @Tags friends
// @Security Bearer
// @Param id path string true "Friendship ID"
// @Success 204 "No Content"
// @Failure 404 {object} httpx.ErrorResponse
// @Router /friends/{id} [delete]
func (h *HTTPHandler) remove(w http.ResponseWriter, r *http.Request, friendshipID string) {
	if err := h.service.Remove(r.Context(), httpx.UserIDFrom(r), friendshipID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Friendship not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}
