package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates valid credentials without the required role.
var ErrForbidden = errors.New("forbidden")

// ErrStoreUnavailable indicates that the ledger store could not complete a read or write.
var ErrStoreUnavailable = errors.New("store unavailable")

// AppError carries an HTTP-like status code together with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and a message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports server-side AppErrors as ErrStoreUnavailable so callers can
// branch on the sentinel without knowing the status code.
func (e *AppError) Is(target error) bool {
	return target == ErrStoreUnavailable && e.Code >= 500
}
