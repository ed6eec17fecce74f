package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"drezzle/internal/middleware"
)

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type ToggleLikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}

type ToggleSaveResponse struct {
	Message string `json:"message"`
	Saved   bool   `json:"saved"`
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	contentID := mux.Vars(r)["content_id"]

	liked, err := h.SocialService.ToggleLike(r.Context(), user.UserID, contentID)
	if err != nil {
		RespondError(w, err)
		return
	}

	message := "Content unliked"
	if liked {
		message = "Content liked"
	}

	WriteSuccess(w, ToggleLikeResponse{Message: message, Liked: liked}, http.StatusOK)
}

func (h *Handlers) ToggleSave(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	contentID := mux.Vars(r)["content_id"]

	saved, err := h.SocialService.ToggleSave(r.Context(), user.UserID, contentID)
	if err != nil {
		RespondError(w, err)
		return
	}

	message := "Content unsaved"
	if saved {
		message = "Content saved"
	}

	WriteSuccess(w, ToggleSaveResponse{Message: message, Saved: saved}, http.StatusOK)
}

func (h *Handlers) GetSavedContents(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	skip, limit := pagination(r)

	contents, err := h.SocialService.ListSaved(r.Context(), user.UserID, skip, limit)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, contents, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	contentID := mux.Vars(r)["content_id"]

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	comment, err := h.SocialService.AddComment(r.Context(), user, contentID, req.Text)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	contentID := mux.Vars(r)["content_id"]
	skip, limit := pagination(r)

	comments, err := h.SocialService.ListComments(r.Context(), contentID, skip, limit)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}
