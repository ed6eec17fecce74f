package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"drezzle/internal/middleware"
	"drezzle/internal/roles"
)

type VerificationDecisionRequest struct {
	Decision string `json:"decision" validate:"required"`
	Reason   string `json:"reason"`
}

func (h *Handlers) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.AdminService.Stats(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}

func (h *Handlers) GetAdminUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	users, err := h.AdminService.ListUsers(r.Context(), skip, limit)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, users, http.StatusOK)
}

func (h *Handlers) GetPendingVerifications(w http.ResponseWriter, r *http.Request) {
	pending, err := h.AdminService.PendingVerifications(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, pending, http.StatusOK)
}

func (h *Handlers) VerifyExpert(w http.ResponseWriter, r *http.Request) {
	h.decideVerification(w, r, roles.Expert)
}

func (h *Handlers) VerifyLabel(w http.ResponseWriter, r *http.Request) {
	h.decideVerification(w, r, roles.Label)
}

func (h *Handlers) decideVerification(w http.ResponseWriter, r *http.Request, kind roles.Role) {
	admin, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	targetUserID := mux.Vars(r)["user_id"]

	var req VerificationDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, err := h.VerificationService.Decide(r.Context(), admin, targetUserID, kind, req.Decision, req.Reason)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	targetID := mux.Vars(r)["user_id"]

	if err := h.AdminService.DeleteUser(r.Context(), admin.UserID, targetID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "User deleted"}, http.StatusOK)
}

func (h *Handlers) DeleteContent(w http.ResponseWriter, r *http.Request) {
	contentID := mux.Vars(r)["content_id"]

	if err := h.AdminService.DeleteContent(r.Context(), contentID); err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Content deleted"}, http.StatusOK)
}
