package handlers

import (
	"encoding/json"
	"net/http"

	"drezzle/internal/middleware"
	"drezzle/internal/service"
)

type CreateContentRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description"`
	ContentType string   `json:"content_type" validate:"required,oneof=audio video"`
	AudioData   string   `json:"audio_data"`
	VideoData   string   `json:"video_data"`
	CoverImage  string   `json:"cover_image"`
	Duration    *float64 `json:"duration"`
}

func (h *Handlers) CreateContent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	content, err := h.ContentService.CreateContent(r.Context(), user, service.CreateContentRequest{
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		AudioData:   req.AudioData,
		VideoData:   req.VideoData,
		CoverImage:  req.CoverImage,
		Duration:    req.Duration,
	})
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, content, http.StatusOK)
}

func (h *Handlers) GetContents(w http.ResponseWriter, r *http.Request) {
	skip, limit := pagination(r)

	contents, err := h.ContentService.ListContents(r.Context(), skip, limit)
	if err != nil {
		RespondError(w, err)
		return
	}

	WriteSuccess(w, contents, http.StatusOK)
}
