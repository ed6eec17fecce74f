package service

import (
	"context"

	"drezzle/internal/models"
	"drezzle/internal/repository"
)

type SocialService interface {
	ToggleLike(ctx context.Context, userID, contentID string) (bool, error)
	ToggleSave(ctx context.Context, userID, contentID string) (bool, error)
	ListSaved(ctx context.Context, userID string, skip, limit int) ([]models.Content, error)
	AddComment(ctx context.Context, user *models.User, contentID, text string) (*models.Comment, error)
	ListComments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error)
}

type socialService struct {
	contentRepo  repository.ContentRepository
	commentRepo  repository.CommentRepository
	relationRepo repository.RelationRepository
}

func NewSocialService(contentRepo repository.ContentRepository, commentRepo repository.CommentRepository, relationRepo repository.RelationRepository) SocialService {
	return &socialService{
		contentRepo:  contentRepo,
		commentRepo:  commentRepo,
		relationRepo: relationRepo,
	}
}

func (s *socialService) ToggleLike(ctx context.Context, userID, contentID string) (bool, error) {
	// existence check: лайк несуществующего контента - NotFound
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return false, err
	}

	return s.relationRepo.ToggleLike(ctx, userID, contentID)
}

func (s *socialService) ToggleSave(ctx context.Context, userID, contentID string) (bool, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return false, err
	}

	return s.relationRepo.ToggleSave(ctx, userID, contentID)
}

func (s *socialService) ListSaved(ctx context.Context, userID string, skip, limit int) ([]models.Content, error) {
	return s.relationRepo.ListSavedContents(ctx, userID, skip, limit)
}

// AddComment сохраняет комментарий со снимком текущего username автора.
// Снимок не обновляется при последующем переименовании.
func (s *socialService) AddComment(ctx context.Context, user *models.User, contentID, text string) (*models.Comment, error) {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ContentID: contentID,
		UserID:    user.UserID,
		Username:  user.Username,
		Text:      text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListComments не проверяет существование контента: пустой contentID дает
// пустой список, а не ошибку.
func (s *socialService) ListComments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error) {
	return s.commentRepo.ListByContentID(ctx, contentID, skip, limit)
}
