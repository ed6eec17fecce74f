package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"drezzle/internal/models"
)

type relationRepository struct {
	db *sqlx.DB
}

func NewRelationRepository(db *sqlx.DB) RelationRepository {
	return &relationRepository{db: db}
}

// ToggleLike переключает лайк одной транзакцией. Вставка идет через
// ON CONFLICT DO NOTHING по уникальной паре (user_id, content_id):
// из двух конкурентных вставок пройдет ровно одна, вторая увидит
// rowsAffected=0 и пойдет по ветке снятия лайка. Счетчик likes_count
// меняется в той же транзакции арифметикой на стороне БД, а не
// чтением-записью.
func (r *relationRepository) ToggleLike(ctx context.Context, userID, contentID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO likes (user_id, content_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, content_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, insertQuery, userID, contentID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	liked := inserted == 1
	if liked {
		counterQuery := `UPDATE contents SET likes_count = likes_count + 1 WHERE content_id = $1`
		if _, err := tx.ExecContext(ctx, counterQuery, contentID); err != nil {
			return false, fmt.Errorf("ошибка при обновлении счетчика лайков: %w", err)
		}
	} else {
		deleteQuery := `DELETE FROM likes WHERE user_id = $1 AND content_id = $2`
		result, err := tx.ExecContext(ctx, deleteQuery, userID, contentID)
		if err != nil {
			return false, fmt.Errorf("ошибка при снятии лайка: %w", err)
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
		}

		// счетчик уменьшается только если строка реально удалена
		if deleted == 1 {
			counterQuery := `UPDATE contents SET likes_count = likes_count - 1 WHERE content_id = $1 AND likes_count > 0`
			if _, err := tx.ExecContext(ctx, counterQuery, contentID); err != nil {
				return false, fmt.Errorf("ошибка при обновлении счетчика лайков: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return liked, nil
}

// ToggleSave - та же схема, что и ToggleLike, но без счетчика на контенте.
func (r *relationRepository) ToggleSave(ctx context.Context, userID, contentID string) (bool, error) {
	insertQuery := `
		INSERT INTO saved_contents (user_id, content_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, content_id) DO NOTHING
	`

	result, err := r.db.ExecContext(ctx, insertQuery, userID, contentID, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("ошибка при сохранении контента: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке вставленных строк: %w", err)
	}

	if inserted == 1 {
		return true, nil
	}

	deleteQuery := `DELETE FROM saved_contents WHERE user_id = $1 AND content_id = $2`
	if _, err := r.db.ExecContext(ctx, deleteQuery, userID, contentID); err != nil {
		return false, fmt.Errorf("ошибка при удалении сохранения: %w", err)
	}

	return false, nil
}

// ListSavedContents возвращает контент из сохранений пользователя.
// INNER JOIN молча пропускает связи на уже удаленный контент.
func (r *relationRepository) ListSavedContents(ctx context.Context, userID string, skip, limit int) ([]models.Content, error) {
	query := `
		SELECT c.* FROM saved_contents sc
		JOIN contents c ON c.content_id = sc.content_id
		WHERE sc.user_id = $1
		ORDER BY sc.created_at DESC
		OFFSET $2 LIMIT $3
	`

	var contents []models.Content
	err := r.db.SelectContext(ctx, &contents, query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении сохраненного контента: %w", err)
	}

	return contents, nil
}

func (r *relationRepository) DeleteByContentID(ctx context.Context, contentID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE content_id = $1`, contentID); err != nil {
		return fmt.Errorf("ошибка при удалении лайков контента: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_contents WHERE content_id = $1`, contentID); err != nil {
		return fmt.Errorf("ошибка при удалении сохранений контента: %w", err)
	}

	return nil
}

// DeleteByUserID снимает лайки пользователя с чужого контента вместе с
// уменьшением счетчиков, затем убирает его сохранения. Лайки и счетчики -
// одна транзакция.
func (r *relationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	counterQuery := `
		UPDATE contents SET likes_count = likes_count - 1
		WHERE content_id IN (SELECT content_id FROM likes WHERE user_id = $1)
			AND likes_count > 0
	`

	if _, err := tx.ExecContext(ctx, counterQuery, userID); err != nil {
		return fmt.Errorf("ошибка при обновлении счетчиков лайков: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("ошибка при удалении лайков пользователя: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_contents WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("ошибка при удалении сохранений пользователя: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
