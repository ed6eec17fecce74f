package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"drezzle/internal/models"
)

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateBadgeRequest(ctx context.Context, request *models.BadgeRequest) error {
	if request.RequestID == "" {
		request.RequestID = uuid.New().String()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}
	if request.Status == "" {
		request.Status = "pending"
	}

	query := `
		INSERT INTO badge_requests (request_id, user_id, reason, status, created_at)
		VALUES (:request_id, :user_id, :reason, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, request)
	if err != nil {
		return fmt.Errorf("ошибка при создании заявки на бейдж: %w", err)
	}

	return nil
}

func (r *requestRepository) HasPendingBadgeRequest(ctx context.Context, userID string) (bool, error) {
	query := `SELECT COUNT(*) FROM badge_requests WHERE user_id = $1 AND status = 'pending'`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке заявок на бейдж: %w", err)
	}

	return count > 0, nil
}

func (r *requestRepository) CreateLabelRequest(ctx context.Context, request *models.LabelRequest) error {
	if request.RequestID == "" {
		request.RequestID = uuid.New().String()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}
	if request.Status == "" {
		request.Status = "pending"
	}

	query := `
		INSERT INTO label_requests (request_id, user_id, label_name, description, status, created_at)
		VALUES (:request_id, :user_id, :label_name, :description, :status, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, request)
	if err != nil {
		return fmt.Errorf("ошибка при создании заявки лейбла: %w", err)
	}

	return nil
}

func (r *requestRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM badge_requests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("ошибка при удалении заявок на бейдж: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM label_requests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("ошибка при удалении заявок лейбла: %w", err)
	}

	return nil
}
