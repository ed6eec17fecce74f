package service

import (
	"context"
	"fmt"

	"drezzle/internal/apperrors"
	"drezzle/internal/models"
	"drezzle/internal/repository"
	"drezzle/internal/roles"
)

const (
	ContentTypeAudio = "audio"
	ContentTypeVideo = "video"
)

type CreateContentRequest struct {
	Title       string
	Description string
	ContentType string
	AudioData   string
	VideoData   string
	CoverImage  string
	Duration    *float64
}

type ContentService interface {
	CreateContent(ctx context.Context, user *models.User, req CreateContentRequest) (*models.Content, error)
	ListContents(ctx context.Context, skip, limit int) ([]models.Content, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

// CreateContent проверяет право по действующей роли и наличие полезной
// нагрузки, соответствующей типу контента.
func (s *contentService) CreateContent(ctx context.Context, user *models.User, req CreateContentRequest) (*models.Content, error) {
	if !roles.Authorize(roles.Role(user.VerifiedRole), roles.Creator) {
		return nil, fmt.Errorf("загружать контент могут только подтвержденные создатели: %w", apperrors.ErrForbidden)
	}

	switch req.ContentType {
	case ContentTypeAudio:
		if req.AudioData == "" {
			return nil, fmt.Errorf("для аудио-контента обязательно поле audio_data: %w", apperrors.ErrInvalidArgument)
		}
	case ContentTypeVideo:
		if req.VideoData == "" {
			return nil, fmt.Errorf("для видео-контента обязательно поле video_data: %w", apperrors.ErrInvalidArgument)
		}
	default:
		return nil, fmt.Errorf("content_type должен быть audio или video, получено %q: %w", req.ContentType, apperrors.ErrInvalidArgument)
	}

	content := &models.Content{
		UserID:      user.UserID,
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		AudioData:   req.AudioData,
		VideoData:   req.VideoData,
		CoverImage:  req.CoverImage,
		Duration:    req.Duration,
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

func (s *contentService) ListContents(ctx context.Context, skip, limit int) ([]models.Content, error) {
	return s.contentRepo.ListAll(ctx, skip, limit)
}
