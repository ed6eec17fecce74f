package service

import (
	"drezzle/internal/config"
	"drezzle/internal/models"
	"drezzle/internal/repository"
	"drezzle/internal/roles"
	"drezzle/internal/storage"
)

type Service struct {
	Auth         AuthService
	Verification VerificationService
	Content      ContentService
	Social       SocialService
	Admin        AdminService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Auth:         NewAuthService(rep.User, cfg),
		Verification: NewVerificationService(rep.User, rep.Request, store),
		Content:      NewContentService(rep.Content),
		Social:       NewSocialService(rep.Content, rep.Comment, rep.Relation),
		Admin:        NewAdminService(rep.User, rep.Content, rep.Comment, rep.Relation, rep.Request, rep.Stats),
	}
}

// userState собирает состояние ролей из записи пользователя.
func userState(user *models.User) roles.State {
	return roles.State{
		Declared: roles.Role(user.DeclaredRole),
		Verified: roles.Role(user.VerifiedRole),
		Badge:    roles.BadgeStatus(user.BadgeStatus),
	}
}
