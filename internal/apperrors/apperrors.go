package apperrors

import "errors"

// Базовые ошибки приложения. Сервисы оборачивают их через fmt.Errorf("%w"),
// хендлеры сопоставляют с HTTP статусом через errors.Is.
var (
	ErrUnauthenticated = errors.New("требуется аутентификация")
	ErrForbidden       = errors.New("доступ запрещен")
	ErrNotFound        = errors.New("не найдено")
	ErrConflict        = errors.New("конфликт данных")
	ErrInvalidArgument = errors.New("неверные данные")
)
