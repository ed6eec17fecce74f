package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"drezzle/internal/apperrors"
	"drezzle/internal/config"
	"drezzle/internal/models"
	"drezzle/internal/repository"
	"drezzle/internal/roles"
)

type RegisterRequest struct {
	Email        string
	Password     string
	Username     string
	DeclaredRole string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (string, error)
	UserFromToken(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", fmt.Errorf("пользователь с email %s уже существует: %w", req.Email, apperrors.ErrConflict)
	}

	existingUsername, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil && existingUsername != nil {
		return nil, "", fmt.Errorf("username %s уже занят: %w", req.Username, apperrors.ErrConflict)
	}

	declared, err := roles.ParseRole(req.DeclaredRole)
	if err != nil {
		return nil, "", err
	}

	// initial role state from the registration transition table
	state, err := roles.NewState(declared)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        req.Email,
		Username:     req.Username,
		DeclaredRole: string(state.Declared),
		VerifiedRole: string(state.Verified),
		BadgeStatus:  string(state.Badge),
		IsVerified:   state.IsVerified(),
	}

	if err := s.userRepo.CreateUser(ctx, user, req.Password); err != nil {
		return nil, "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return user, accessToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": user.UserID,
		"exp": now.Add(s.cfg.AccessTokenDuration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// ValidateToken проверяет подпись и срок токена и возвращает id субъекта.
func (s *authService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return "", fmt.Errorf("недействительный токен: %w", apperrors.ErrUnauthenticated)
	}

	if !token.Valid {
		return "", fmt.Errorf("недействительный токен: %w", apperrors.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("неверный формат claims: %w", apperrors.ErrUnauthenticated)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fmt.Errorf("в токене нет субъекта: %w", apperrors.ErrUnauthenticated)
	}

	return subject, nil
}

// UserFromToken резолвит токен в актуальную запись пользователя: права
// всегда проверяются по свежему verified_role из хранилища, а не по
// снимку в claims.
func (s *authService) UserFromToken(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("пользователь токена не найден: %w", apperrors.ErrUnauthenticated)
		}
		return nil, err
	}

	return user, nil
}
