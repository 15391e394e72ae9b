package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidBody      = fmt.Errorf("invalid request body")
	ErrIDRequired       = fmt.Errorf("id is required")
	ErrInvalidID        = fmt.Errorf("id must be an integer")

	// 405 Method Not Allowed
	ErrMethodNotAllowed = fmt.Errorf("Method not allowed")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("Internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
