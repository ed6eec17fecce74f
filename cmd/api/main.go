package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"drezzle/cmd/app"
	"drezzle/internal/config"
	handlers "drezzle/internal/handler"
	"drezzle/internal/middleware"
	"drezzle/internal/roles"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// public routes
	public := router.PathPrefix("/api").Subrouter()
	public.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	public.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	public.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	public.HandleFunc("/contents", handler.GetContents).Methods(http.MethodGet)
	public.HandleFunc("/contents/{content_id}/comments", handler.GetComments).Methods(http.MethodGet)

	// routes requiring a valid access token
	secured := router.PathPrefix("/api").Subrouter()
	secured.Use(middleware.AuthMiddleware(services.Auth))
	secured.HandleFunc("/auth/me", handler.GetCurrentUser).Methods(http.MethodGet)
	secured.HandleFunc("/verification/submit", handler.SubmitVerification).Methods(http.MethodPost)
	secured.HandleFunc("/contents", handler.CreateContent).Methods(http.MethodPost)
	secured.HandleFunc("/contents/{content_id}/like", handler.ToggleLike).Methods(http.MethodPost)
	secured.HandleFunc("/contents/{content_id}/save", handler.ToggleSave).Methods(http.MethodPost)
	secured.HandleFunc("/saved-contents", handler.GetSavedContents).Methods(http.MethodGet)
	secured.HandleFunc("/contents/{content_id}/comments", handler.CreateComment).Methods(http.MethodPost)
	secured.HandleFunc("/badge-requests", handler.CreateBadgeRequest).Methods(http.MethodPost)
	secured.HandleFunc("/label-requests", handler.CreateLabelRequest).Methods(http.MethodPost)

	// admin panel
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware(services.Auth), middleware.RequireRole(roles.Admin))
	admin.HandleFunc("/stats", handler.GetAdminStats).Methods(http.MethodGet)
	admin.HandleFunc("/users", handler.GetAdminUsers).Methods(http.MethodGet)
	admin.HandleFunc("/pending-verifications", handler.GetPendingVerifications).Methods(http.MethodGet)
	admin.HandleFunc("/verify-expert/{user_id}", handler.VerifyExpert).Methods(http.MethodPost)
	admin.HandleFunc("/verify-label/{user_id}", handler.VerifyLabel).Methods(http.MethodPost)
	admin.HandleFunc("/users/{user_id}", handler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/contents/{content_id}", handler.DeleteContent).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
