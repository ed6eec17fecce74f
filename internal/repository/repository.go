package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"drezzle/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	SubmitVerification(ctx context.Context, userID, documentsURL, description string, submittedAt time.Time) error
	ApplyVerificationDecision(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, skip, limit int) ([]models.User, error)
	ListPendingVerifications(ctx context.Context, declaredRole string, requireDocuments bool) ([]models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	GetByID(ctx context.Context, contentID string) (*models.Content, error)
	ListAll(ctx context.Context, skip, limit int) ([]models.Content, error)
	ListIDsByUserID(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, contentID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByContentID(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error)
	DeleteByContentID(ctx context.Context, contentID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// RelationRepository обслуживает toggle-связи лайков и сохранений.
// Переключение выполняется одной транзакцией: условная вставка по
// уникальной паре (user_id, content_id) и парное изменение счетчика.
type RelationRepository interface {
	ToggleLike(ctx context.Context, userID, contentID string) (bool, error)
	ToggleSave(ctx context.Context, userID, contentID string) (bool, error)
	ListSavedContents(ctx context.Context, userID string, skip, limit int) ([]models.Content, error)
	DeleteByContentID(ctx context.Context, contentID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type RequestRepository interface {
	CreateBadgeRequest(ctx context.Context, request *models.BadgeRequest) error
	HasPendingBadgeRequest(ctx context.Context, userID string) (bool, error)
	CreateLabelRequest(ctx context.Context, request *models.LabelRequest) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type StatsRepository interface {
	CountUsers(ctx context.Context) (int, error)
	CountContents(ctx context.Context) (int, error)
	CountPendingVerifications(ctx context.Context, declaredRole string) (int, error)
	UsersByVerifiedRole(ctx context.Context) (map[string]int, error)
	CountRecentRegistrations(ctx context.Context, since time.Time) (int, error)
}

type Repository struct {
	User     UserRepository
	Content  ContentRepository
	Comment  CommentRepository
	Relation RelationRepository
	Request  RequestRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Content:  NewContentRepository(db),
		Comment:  NewCommentRepository(db),
		Relation: NewRelationRepository(db),
		Request:  NewRequestRepository(db),
		Stats:    NewStatsRepository(db),
	}
}
