package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound - общий признак отсутствующей записи, проверяется через errors.Is.
var ErrNotFound = errors.New("record not found")

// ValidationError - входные данные не прошли проверку. Возвращается до любой мутации.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError создаёт ошибку валидации для поля.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError - идентификатор не найден в коллекции.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Collection, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound - короткий конструктор для хранилищ.
func NotFound(collection, id string) error {
	return &NotFoundError{Collection: collection, ID: id}
}

// IsValidation сообщает, является ли err ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
