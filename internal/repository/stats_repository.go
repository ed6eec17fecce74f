package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете пользователей: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountContents(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM contents`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете контента: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountPendingVerifications(ctx context.Context, declaredRole string) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE declared_role = $1 AND badge_status = 'pending'`

	var count int
	err := r.db.GetContext(ctx, &count, query, declaredRole)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете заявок на проверку: %w", err)
	}
	return count, nil
}

func (r *statsRepository) UsersByVerifiedRole(ctx context.Context) (map[string]int, error) {
	query := `SELECT verified_role, COUNT(*) AS cnt FROM users GROUP BY verified_role`

	rows := []struct {
		VerifiedRole string `db:"verified_role"`
		Cnt          int    `db:"cnt"`
	}{}

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при группировке пользователей по ролям: %w", err)
	}

	byRole := make(map[string]int, len(rows))
	for _, row := range rows {
		byRole[row.VerifiedRole] = row.Cnt
	}

	return byRole, nil
}

func (r *statsRepository) CountRecentRegistrations(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM users WHERE created_at >= $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, since)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете новых регистраций: %w", err)
	}
	return count, nil
}
