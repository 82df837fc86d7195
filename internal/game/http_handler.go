package game

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamehub/internal/httpx"
	"gamehub/internal/platform/igdb"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

// Search handles GET /games/search?q=term&limit=n
// @Summary Search the game catalog
// @Tags games
// @Produce json
// @Param q query string true "Search term"
// @Param limit query int false "Max results"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /games/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Query parameter q is required", nil)
		return
	}

	games, err := h.service.Search(r.Context(), term, limitParam(r))
	if err != nil {
		WriteUpstreamError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, games, map[string]any{"count": len(games)})
}

// Popular handles GET /games/popular?limit=n
// @Summary List popular games
// @Tags games
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /games/popular [get]
func (h *HTTPHandler) Popular(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.Popular(r.Context(), limitParam(r))
	if err != nil {
		WriteUpstreamError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, games, map[string]any{"count": len(games)})
}

// Lookup handles GET /games/{igdbID}
// @Summary Get one game's catalog metadata
// @Tags games
// @Produce json
// @Param igdbID path int true "IGDB game id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /games/{igdbID} [get]
func (h *HTTPHandler) Lookup(w http.ResponseWriter, r *http.Request, externalID string) {
	meta, err := h.service.Lookup(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Game not found", nil)
			return
		}
		WriteUpstreamError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, meta, nil)
}

// WriteUpstreamError translates catalog client failures. Auth and query
// failures against IGDB are upstream faults, not client errors.
func WriteUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *igdb.AuthError
	if errors.As(err, &authErr) {
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_AUTH_ERROR", "Game catalog authentication failed", nil)
		return
	}
	var queryErr *igdb.QueryError
	if errors.As(err, &queryErr) {
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_QUERY_ERROR", "Game catalog query failed", nil)
		return
	}
	httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Game catalog unavailable", nil)
}
