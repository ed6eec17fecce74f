package service

import (
	"context"
	"fmt"
	"time"

	"drezzle/internal/apperrors"
	"drezzle/internal/models"
	"drezzle/internal/repository"
	"drezzle/internal/roles"
)

// PendingVerifications - две очереди на проверку: эксперты (в очередь
// попадают только заявки с приложенными документами) и лейблы.
type PendingVerifications struct {
	ExpertRequests []models.User `json:"expert_requests"`
	LabelRequests  []models.User `json:"label_requests"`
}

type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, error)
	PendingVerifications(ctx context.Context) (*PendingVerifications, error)
	DeleteUser(ctx context.Context, adminID, targetID string) error
	DeleteContent(ctx context.Context, contentID string) error
}

type adminService struct {
	userRepo     repository.UserRepository
	contentRepo  repository.ContentRepository
	commentRepo  repository.CommentRepository
	relationRepo repository.RelationRepository
	requestRepo  repository.RequestRepository
	statsRepo    repository.StatsRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	contentRepo repository.ContentRepository,
	commentRepo repository.CommentRepository,
	relationRepo repository.RelationRepository,
	requestRepo repository.RequestRepository,
	statsRepo repository.StatsRepository,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		contentRepo:  contentRepo,
		commentRepo:  commentRepo,
		relationRepo: relationRepo,
		requestRepo:  requestRepo,
		statsRepo:    statsRepo,
	}
}

func (s *adminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	totalUsers, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	totalContents, err := s.statsRepo.CountContents(ctx)
	if err != nil {
		return nil, err
	}

	pendingExperts, err := s.statsRepo.CountPendingVerifications(ctx, string(roles.Expert))
	if err != nil {
		return nil, err
	}

	pendingLabels, err := s.statsRepo.CountPendingVerifications(ctx, string(roles.Label))
	if err != nil {
		return nil, err
	}

	byRole, err := s.statsRepo.UsersByVerifiedRole(ctx)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	recentRegistrations, err := s.statsRepo.CountRecentRegistrations(ctx, weekAgo)
	if err != nil {
		return nil, err
	}

	return &models.AdminStats{
		TotalUsers:            totalUsers,
		TotalContents:         totalContents,
		PendingExpertRequests: pendingExperts,
		PendingLabelRequests:  pendingLabels,
		UsersByRole:           byRole,
		RecentRegistrations:   recentRegistrations,
	}, nil
}

func (s *adminService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	return s.userRepo.ListUsers(ctx, skip, limit)
}

func (s *adminService) PendingVerifications(ctx context.Context) (*PendingVerifications, error) {
	experts, err := s.userRepo.ListPendingVerifications(ctx, string(roles.Expert), true)
	if err != nil {
		return nil, err
	}

	labels, err := s.userRepo.ListPendingVerifications(ctx, string(roles.Label), false)
	if err != nil {
		return nil, err
	}

	return &PendingVerifications{
		ExpertRequests: experts,
		LabelRequests:  labels,
	}, nil
}

// DeleteUser удаляет пользователя и каскадом все, что на него ссылается:
// его контент с комментариями/лайками/сохранениями, его реакции на чужой
// контент (со счетчиками), его заявки. Каскад - последовательность
// явных удалений, на внешние ключи БД он не опирается.
func (s *adminService) DeleteUser(ctx context.Context, adminID, targetID string) error {
	if adminID == targetID {
		return fmt.Errorf("админ не может удалить сам себя: %w", apperrors.ErrInvalidArgument)
	}

	target, err := s.userRepo.GetUserByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.DeclaredRole == string(roles.Admin) {
		return fmt.Errorf("нельзя удалить другого админа: %w", apperrors.ErrForbidden)
	}

	contentIDs, err := s.contentRepo.ListIDsByUserID(ctx, targetID)
	if err != nil {
		return err
	}

	for _, contentID := range contentIDs {
		if err := s.deleteContentCascade(ctx, contentID); err != nil {
			return err
		}
	}

	if err := s.relationRepo.DeleteByUserID(ctx, targetID); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByUserID(ctx, targetID); err != nil {
		return err
	}

	if err := s.requestRepo.DeleteByUserID(ctx, targetID); err != nil {
		return err
	}

	return s.userRepo.DeleteUser(ctx, targetID)
}

func (s *adminService) DeleteContent(ctx context.Context, contentID string) error {
	if _, err := s.contentRepo.GetByID(ctx, contentID); err != nil {
		return err
	}

	return s.deleteContentCascade(ctx, contentID)
}

func (s *adminService) deleteContentCascade(ctx context.Context, contentID string) error {
	if err := s.commentRepo.DeleteByContentID(ctx, contentID); err != nil {
		return err
	}

	if err := s.relationRepo.DeleteByContentID(ctx, contentID); err != nil {
		return err
	}

	return s.contentRepo.Delete(ctx, contentID)
}
