package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"drezzle/internal/models"
	"drezzle/internal/roles"
	"drezzle/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (string, error) {
	args := m.Called(tokenString)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) SubmitDocuments(ctx context.Context, userID, documents, description string) (*models.User, error) {
	args := m.Called(ctx, userID, documents, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockVerificationService) Decide(ctx context.Context, admin *models.User, targetUserID string, kind roles.Role, decision, reason string) (*models.User, error) {
	args := m.Called(ctx, admin, targetUserID, kind, decision, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockVerificationService) CreateBadgeRequest(ctx context.Context, user *models.User, reason string) (*models.BadgeRequest, error) {
	args := m.Called(ctx, user, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BadgeRequest), args.Error(1)
}

func (m *MockVerificationService) CreateLabelRequest(ctx context.Context, user *models.User, labelName, description string) (*models.LabelRequest, error) {
	args := m.Called(ctx, user, labelName, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LabelRequest), args.Error(1)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) CreateContent(ctx context.Context, user *models.User, req service.CreateContentRequest) (*models.Content, error) {
	args := m.Called(ctx, user, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *MockContentService) ListContents(ctx context.Context, skip, limit int) ([]models.Content, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Content), args.Error(1)
}

type MockSocialService struct {
	mock.Mock
}

func (m *MockSocialService) ToggleLike(ctx context.Context, userID, contentID string) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialService) ToggleSave(ctx context.Context, userID, contentID string) (bool, error) {
	args := m.Called(ctx, userID, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialService) ListSaved(ctx context.Context, userID string, skip, limit int) ([]models.Content, error) {
	args := m.Called(ctx, userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *MockSocialService) AddComment(ctx context.Context, user *models.User, contentID, text string) (*models.Comment, error) {
	args := m.Called(ctx, user, contentID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockSocialService) ListComments(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error) {
	args := m.Called(ctx, contentID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

func (m *MockAdminService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAdminService) PendingVerifications(ctx context.Context) (*service.PendingVerifications, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PendingVerifications), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, adminID, targetID string) error {
	args := m.Called(ctx, adminID, targetID)
	return args.Error(0)
}

func (m *MockAdminService) DeleteContent(ctx context.Context, contentID string) error {
	args := m.Called(ctx, contentID)
	return args.Error(0)
}
