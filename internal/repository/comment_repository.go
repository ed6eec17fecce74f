package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"drezzle/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create вставляет комментарий и увеличивает comments_count одной
// транзакцией: запись без счетчика или счетчик без записи невозможны.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO comments (comment_id, content_id, user_id, username, text, created_at)
		VALUES (:comment_id, :content_id, :user_id, :username, :text, :created_at)
	`

	if _, err := tx.NamedExecContext(ctx, insertQuery, comment); err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	counterQuery := `UPDATE contents SET comments_count = comments_count + 1 WHERE content_id = $1`

	if _, err := tx.ExecContext(ctx, counterQuery, comment.ContentID); err != nil {
		return fmt.Errorf("ошибка при обновлении счетчика комментариев: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *commentRepository) ListByContentID(ctx context.Context, contentID string, skip, limit int) ([]models.Comment, error) {
	query := `
		SELECT * FROM comments
		WHERE content_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, contentID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) DeleteByContentID(ctx context.Context, contentID string) error {
	query := `DELETE FROM comments WHERE content_id = $1`

	_, err := r.db.ExecContext(ctx, query, contentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментариев контента: %w", err)
	}

	return nil
}

// DeleteByUserID удаляет комментарии пользователя на чужом контенте и
// уменьшает comments_count каждого затронутого контента на число
// удаляемых комментариев. Обе операции - одна транзакция.
func (r *commentRepository) DeleteByUserID(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	counterQuery := `
		UPDATE contents SET comments_count = comments_count - sub.cnt
		FROM (
			SELECT content_id, COUNT(*) AS cnt FROM comments WHERE user_id = $1 GROUP BY content_id
		) AS sub
		WHERE contents.content_id = sub.content_id
	`

	if _, err := tx.ExecContext(ctx, counterQuery, userID); err != nil {
		return fmt.Errorf("ошибка при обновлении счетчиков комментариев: %w", err)
	}

	deleteQuery := `DELETE FROM comments WHERE user_id = $1`

	if _, err := tx.ExecContext(ctx, deleteQuery, userID); err != nil {
		return fmt.Errorf("ошибка при удалении комментариев пользователя: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
