package apperror

import "errors"

// Kind classifies an application error for the caller
type Kind int

const (
	KindInvalid Kind = iota
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInternal
)

// AppError represents an application error with a classification
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound           = &AppError{Kind: KindNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Kind: KindUnauthorized, Message: "Unauthorized"}
	ErrConflict           = &AppError{Kind: KindConflict, Message: "Resource already exists"}
	ErrInvalidCredentials = &AppError{Kind: KindUnauthorized, Message: "Invalid username or password"}
)

// NewAppError creates a new application error
func NewAppError(kind Kind, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// NewNotFoundError creates a not found error for a resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewInvalidError creates a precondition-violation error with a custom message
func NewInvalidError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalid,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Kind:    KindConflict,
		Message: message,
	}
}

// NewUnauthorizedError creates an authentication failure with a custom message
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Kind:    KindUnauthorized,
		Message: message,
	}
}

// IsNotFound reports whether the error is a not-found AppError
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindNotFound
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
