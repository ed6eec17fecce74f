package handlers

import (
	"encoding/json"
	"net/http"

	"drezzle/internal/middleware"
	"drezzle/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=listener creator expert label"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// роль по умолчанию - listener, как и в регистрации без выбора роли
	if req.Role == "" {
		req.Role = "listener"
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := service.RegisterRequest{
		Email:        req.Email,
		Password:     req.Password,
		Username:     req.Username,
		DeclaredRole: req.Role,
	}

	_, accessToken, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	_, accessToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
