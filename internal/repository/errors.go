package repository

import (
	"errors"

	"github.com/lib/pq"
)

// isUniqueViolation распознает нарушение уникального ограничения Postgres.
// Для toggle-связей это штатная ситуация "уже существует", а не сбой.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
