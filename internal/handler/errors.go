package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"drezzle/internal/apperrors"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// RespondError сопоставляет ошибку сервиса с HTTP статусом.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrForbidden):
		WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrConflict):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
