package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gamehub/internal/httpx"
	"gamehub/internal/platform/crypto"
)

type HTTPHandler struct {
	service *Service
	secret  string
}

func NewHTTPHandler(service *Service, secret string) *HTTPHandler {
	return &HTTPHandler{service: service, secret: secret}
}

type registerReq struct {
	Username    string  `json:"username" validate:"required,min=3,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	Password    string  `json:"password" validate:"required,password_strength"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=100"`
}

// RegisterUser handles POST /auth/register
// @Summary Register a new user
// @Description Create a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param request body registerReq true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /auth/register [post]
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	newUser, err := h.service.Register(r.Context(), req.Username, req.Email, hashedPassword, req.DisplayName)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Username or email already exists", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, map[string]any{
		"id":           newUser.ID,
		"username":     newUser.Username,
		"email":        newUser.Email,
		"display_name": newUser.DisplayName,
		"join_date":    newUser.JoinDate,
	})
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginUser handles POST /auth/login
// @Summary Login
// @Description Authenticate and receive a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body loginReq true "Login request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func (h *HTTPHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	account, err := h.service.GetByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil || !crypto.VerifyPassword(account.Password, req.Password) {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Incorrect username or password", nil)
		return
	}

	signedToken, _, err := crypto.GenerateToken(h.secret, account.ID, account.Role, crypto.AccessTokenTTL)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"access_token": signedToken,
		"token_type":   "bearer",
		"expires_in":   int(crypto.AccessTokenTTL / time.Second),
	}, nil)
}

// GetCurrentUser handles GET /me
// @Summary Get current user
// @Tags users
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /me [get]
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	account, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"id":           account.ID,
		"username":     account.Username,
		"email":        account.Email,
		"display_name": account.DisplayName,
		"join_date":    account.JoinDate,
	}, nil)
}

// UpdateProfile handles PATCH /me
// @Summary Update profile
// @Tags users
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateCommand true "Profile updates"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /me [patch]
func (h *HTTPHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(cmd); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), userID, cmd)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Email already in use", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"id":           updated.ID,
		"username":     updated.Username,
		"email":        updated.Email,
		"display_name": updated.DisplayName,
		"join_date":    updated.JoinDate,
	}, nil)
}

// GetPublicProfile handles GET /users/{id}
// @Summary Get a user's public profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /users/{id} [get]
func (h *HTTPHandler) GetPublicProfile(w http.ResponseWriter, r *http.Request) {
	userID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/users/"), "/")
	if userID == "" || strings.Contains(userID, "/") {
		http.NotFound(w, r)
		return
	}

	account, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"id":           account.ID,
		"username":     account.Username,
		"display_name": account.DisplayName,
		"join_date":    account.JoinDate,
	}, nil)
}
