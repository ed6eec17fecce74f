package service

import (
	"context"
	"fmt"
	"time"

	"drezzle/internal/apperrors"
	"drezzle/internal/models"
	"drezzle/internal/repository"
	"drezzle/internal/roles"
	"drezzle/internal/storage"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

type VerificationService interface {
	SubmitDocuments(ctx context.Context, userID, documents, description string) (*models.User, error)
	Decide(ctx context.Context, admin *models.User, targetUserID string, kind roles.Role, decision, reason string) (*models.User, error)
	CreateBadgeRequest(ctx context.Context, user *models.User, reason string) (*models.BadgeRequest, error)
	CreateLabelRequest(ctx context.Context, user *models.User, labelName, description string) (*models.LabelRequest, error)
}

type verificationService struct {
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
	storage     storage.Storage
}

func NewVerificationService(userRepo repository.UserRepository, requestRepo repository.RequestRepository, store storage.Storage) VerificationService {
	return &verificationService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		storage:     store,
	}
}

// SubmitDocuments принимает документы эксперта: кладет их в объектное
// хранилище и переводит статус проверки в pending.
func (s *verificationService) SubmitDocuments(ctx context.Context, userID, documents, description string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !userState(user).CanSubmitDocuments() {
		return nil, fmt.Errorf("документы на проверку подают только пользователи с заявленной ролью expert: %w", apperrors.ErrForbidden)
	}

	_, documentsURL, err := s.storage.UploadVerificationDocuments(ctx, userID, documents)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки документов: %w", err)
	}

	submittedAt := time.Now().UTC()
	if err := s.userRepo.SubmitVerification(ctx, userID, documentsURL, description, submittedAt); err != nil {
		return nil, err
	}

	user.VerificationDocuments = documentsURL
	user.VerificationDescription = description
	user.BadgeStatus = string(roles.BadgePending)
	user.SubmittedAt = &submittedAt

	return user, nil
}

// Decide применяет решение админа к пользователю с заявленной ролью kind.
// Повторное решение перезаписывает поля аудита, итоговое состояние ролей
// от этого не меняется.
func (s *verificationService) Decide(ctx context.Context, admin *models.User, targetUserID string, kind roles.Role, decision, reason string) (*models.User, error) {
	if !roles.Authorize(roles.Role(admin.VerifiedRole), roles.Admin) {
		return nil, fmt.Errorf("решения по проверке принимает только админ: %w", apperrors.ErrForbidden)
	}

	if decision != DecisionApprove && decision != DecisionReject {
		return nil, fmt.Errorf("решение должно быть approve или reject, получено %q: %w", decision, apperrors.ErrInvalidArgument)
	}

	target, err := s.userRepo.GetUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	state := userState(target)
	now := time.Now().UTC()

	if decision == DecisionApprove {
		newState, err := state.Approve(kind)
		if err != nil {
			return nil, err
		}
		target.VerifiedRole = string(newState.Verified)
		target.BadgeStatus = string(newState.Badge)
		target.IsVerified = newState.IsVerified()
		target.VerifiedAt = &now
		target.VerifiedBy = &admin.UserID
		target.RejectedAt = nil
		target.RejectedBy = nil
		target.RejectionReason = ""
	} else {
		newState, err := state.Reject(kind)
		if err != nil {
			return nil, err
		}
		target.VerifiedRole = string(newState.Verified)
		target.BadgeStatus = string(newState.Badge)
		target.IsVerified = newState.IsVerified()
		target.RejectedAt = &now
		target.RejectedBy = &admin.UserID
		target.RejectionReason = reason
		target.VerifiedAt = nil
		target.VerifiedBy = nil
	}

	if err := s.userRepo.ApplyVerificationDecision(ctx, target); err != nil {
		return nil, err
	}

	return target, nil
}

// CreateBadgeRequest - заявка creator'а на бейдж. Одна pending заявка на
// пользователя; записи живут как аудит и этим сервисом не разрешаются.
func (s *verificationService) CreateBadgeRequest(ctx context.Context, user *models.User, reason string) (*models.BadgeRequest, error) {
	if user.DeclaredRole != string(roles.Creator) {
		return nil, fmt.Errorf("заявку на бейдж подают только creator: %w", apperrors.ErrForbidden)
	}

	hasPending, err := s.requestRepo.HasPendingBadgeRequest(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if hasPending {
		return nil, fmt.Errorf("у вас уже есть необработанная заявка на бейдж: %w", apperrors.ErrConflict)
	}

	request := &models.BadgeRequest{
		UserID: user.UserID,
		Reason: reason,
		Status: "pending",
	}

	if err := s.requestRepo.CreateBadgeRequest(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}

func (s *verificationService) CreateLabelRequest(ctx context.Context, user *models.User, labelName, description string) (*models.LabelRequest, error) {
	request := &models.LabelRequest{
		UserID:      user.UserID,
		LabelName:   labelName,
		Description: description,
		Status:      "pending",
	}

	if err := s.requestRepo.CreateLabelRequest(ctx, request); err != nil {
		return nil, err
	}

	return request, nil
}
