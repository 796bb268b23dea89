package errors

import (
	stderrors "errors"
	"fmt"
)

type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeBackend    ErrorType = "backend"
	ErrorTypeDecode     ErrorType = "decode"
	ErrorTypeInternal   ErrorType = "internal"
)

// AppError is what the UI shows: Message is user-facing, Cause is for logs.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

func NewNetworkError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeNetwork, Message: message, Cause: cause}
}

// NewBackendError wraps a non-success HTTP response; message is the server detail.
func NewBackendError(statusCode int, message string) *AppError {
	return &AppError{Type: ErrorTypeBackend, Message: message, StatusCode: statusCode}
}

func NewDecodeError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeDecode, Message: message, Cause: cause}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Cause: cause}
}

func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// UserMessage returns the text to surface to the user for any error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
