package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"drezzle/internal/models"
	"drezzle/internal/roles"
	"drezzle/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const userContextKey contextKey = "currentUser"

// WithUser кладет пользователя запроса в контекст.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CurrentUser достает пользователя запроса из контекста.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// AuthMiddleware проверяет bearer-токен и кладет в контекст актуальную
// запись пользователя из хранилища. Все проверки прав дальше идут по
// свежему verified_role, а не по содержимому токена.
func AuthMiddleware(authService service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extracting the token from the header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			// Checking the "Bearer <token>" format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, "Неверный формат токена", http.StatusUnauthorized)
				return
			}

			user, err := authService.UserFromToken(r.Context(), parts[1])
			if err != nil {
				writeError(w, "Недействительный токен", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireRole пропускает только пользователей, чья действующая роль дает
// требуемое право. Ставится после AuthMiddleware.
func RequireRole(required roles.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok {
				writeError(w, "Требуется авторизация", http.StatusUnauthorized)
				return
			}

			if !roles.Authorize(roles.Role(user.VerifiedRole), required) {
				writeError(w, "Доступ запрещен", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
