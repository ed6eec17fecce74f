package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"drezzle/internal/apperrors"
	"drezzle/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	// create user id
	user.UserID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO users (user_id, email, username, password_hash, declared_role, verified_role,
			badge_status, is_verified, verification_documents, verification_description, created_at)
		VALUES (:user_id, :email, :username, :password_hash, :declared_role, :verified_role,
			:badge_status, :is_verified, :verification_documents, :verification_description, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email или username уже заняты: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь %s: %w", username, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по username: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("неверный email или пароль: %w", apperrors.ErrUnauthenticated)
		}
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный email или пароль: %w", apperrors.ErrUnauthenticated)
	}

	return user, nil
}

func (r *userRepository) SubmitVerification(ctx context.Context, userID, documentsURL, description string, submittedAt time.Time) error {
	query := `
		UPDATE users
		SET verification_documents = $1,
			verification_description = $2,
			badge_status = 'pending',
			submitted_at = $3
		WHERE user_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, documentsURL, description, submittedAt, userID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении документов: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %s: %w", userID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *userRepository) ApplyVerificationDecision(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET verified_role = :verified_role,
			badge_status = :badge_status,
			is_verified = :is_verified,
			verified_at = :verified_at,
			verified_by = :verified_by,
			rejected_at = :rejected_at,
			rejected_by = :rejected_by,
			rejection_reason = :rejection_reason
		WHERE user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("ошибка при применении решения: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %s: %w", user.UserID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *userRepository) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	query := `SELECT * FROM users ORDER BY created_at DESC OFFSET $1 LIMIT $2`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}

	return users, nil
}

func (r *userRepository) ListPendingVerifications(ctx context.Context, declaredRole string, requireDocuments bool) ([]models.User, error) {
	query := `
		SELECT * FROM users
		WHERE declared_role = $1 AND badge_status = 'pending'
	`
	if requireDocuments {
		query += ` AND verification_documents <> ''`
	}
	query += ` ORDER BY created_at DESC`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, declaredRole)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении заявок на проверку: %w", err)
	}

	return users, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении пользователя: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пользователь с ID %s: %w", userID, apperrors.ErrNotFound)
	}

	return nil
}
