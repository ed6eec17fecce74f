package handlers

import (
	"encoding/json"
	"net/http"

	"drezzle/internal/middleware"
)

type SubmitVerificationRequest struct {
	Documents   string `json:"documents" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateBadgeRequestRequest struct {
	Reason string `json:"reason" validate:"required,max=2000"`
}

type CreateLabelRequestRequest struct {
	LabelName   string `json:"label_name" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=2000"`
}

func (h *Handlers) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req SubmitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	updated, err := h.VerificationService.SubmitDocuments(r.Context(), user.UserID, req.Documents, req.Description)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) CreateBadgeRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateBadgeRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	request, err := h.VerificationService.CreateBadgeRequest(r.Context(), user, req.Reason)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, request, http.StatusOK)
}

func (h *Handlers) CreateLabelRequest(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateLabelRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	request, err := h.VerificationService.CreateLabelRequest(r.Context(), user, req.LabelName, req.Description)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, request, http.StatusOK)
}
