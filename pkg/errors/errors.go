package errors

import (
	"errors"
	"fmt"
)

const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeBadRequest        = "BAD_REQUEST"
)

var (
	ErrInvalidCredentials      = NewAppError(CodeUnauthorized, "Invalid username or password", nil)
	ErrInvalidToken            = NewAppError(CodeUnauthorized, "Invalid or expired session", nil)
	ErrUnauthorized            = NewAppError(CodeUnauthorized, "Authentication required", nil)
	ErrInsufficientPermissions = NewAppError(CodeForbidden, "Insufficient permissions", nil)

	ErrInvalidInput = errors.New("invalid input data")
)

// FieldError is a single field-level violation reported back to the caller.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code    string
	Message string
	Err     error
	Fields  []FieldError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewNotFound(message string) *AppError {
	return NewAppError(CodeNotFound, message, nil)
}

func NewConflict(message string) *AppError {
	return NewAppError(CodeConflict, message, nil)
}

func NewValidationError(fields ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewTransitionError(entity, from, to string) *AppError {
	return NewAppError(
		CodeInvalidTransition,
		fmt.Sprintf("Cannot change %s status from %s to %s", entity, from, to),
		nil,
	)
}

// CodeOf returns the AppError code carried anywhere in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
