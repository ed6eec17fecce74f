package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"drezzle/internal/apperrors"
	"drezzle/internal/models"
)

type contentRepository struct {
	db *sqlx.DB
}

func NewContentRepository(db *sqlx.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	if content.ContentID == "" {
		content.ContentID = uuid.New().String()
	}
	if content.CreatedAt.IsZero() {
		content.CreatedAt = time.Now().UTC()
	}
	content.LikesCount = 0
	content.CommentsCount = 0

	query := `
		INSERT INTO contents (content_id, user_id, title, description, content_type,
			audio_data, video_data, cover_image, duration, likes_count, comments_count, created_at)
		VALUES (:content_id, :user_id, :title, :description, :content_type,
			:audio_data, :video_data, :cover_image, :duration, :likes_count, :comments_count, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, content)
	if err != nil {
		return fmt.Errorf("ошибка при создании контента: %w", err)
	}

	return nil
}

func (r *contentRepository) GetByID(ctx context.Context, contentID string) (*models.Content, error) {
	query := `SELECT * FROM contents WHERE content_id = $1`

	var content models.Content
	err := r.db.GetContext(ctx, &content, query, contentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("контент с ID %s: %w", contentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении контента: %w", err)
	}

	return &content, nil
}

func (r *contentRepository) ListAll(ctx context.Context, skip, limit int) ([]models.Content, error) {
	query := `SELECT * FROM contents ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	var contents []models.Content
	err := r.db.SelectContext(ctx, &contents, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты контента: %w", err)
	}

	return contents, nil
}

func (r *contentRepository) ListIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT content_id FROM contents WHERE user_id = $1`

	var ids []string
	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении контента пользователя: %w", err)
	}

	return ids, nil
}

func (r *contentRepository) Delete(ctx context.Context, contentID string) error {
	query := `DELETE FROM contents WHERE content_id = $1`

	result, err := r.db.ExecContext(ctx, query, contentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении контента: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("контент с ID %s: %w", contentID, apperrors.ErrNotFound)
	}

	return nil
}
