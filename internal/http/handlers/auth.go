package handlers

import (
	"net/http"
	"time"

	"careerassign/internal/app"
	"careerassign/internal/common"
	"careerassign/internal/http/middleware"
	"careerassign/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "register") {
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, toAuthResponse(result))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, "login") {
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, toAuthResponse(result))
}

func (h *AuthHandler) allow(w http.ResponseWriter, r *http.Request, action string) bool {
	if h.limiter == nil {
		return true
	}
	key := "auth:" + action + ":" + middleware.ClientIP(r)
	if !h.limiter.Allow(key, 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many attempts", nil))
		return false
	}
	return true
}

func toAuthResponse(result *app.AuthResult) authResponse {
	return authResponse{
		UserID:    result.User.ID.String(),
		Email:     result.User.Email,
		Role:      string(result.User.Role),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	}
}
