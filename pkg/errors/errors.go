package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - user-correctable input and lookups
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Upstream/transport errors - the weather API and the network between us
	ErrorTypeNetwork
	ErrorTypeUpstream
	ErrorTypeUnauthorized

	// Platform capability errors - geolocation and notification grants
	ErrorTypePermissionDenied
	ErrorTypeUnsupported

	// Infrastructure errors - persistence and delivery
	ErrorTypeStorage
	ErrorTypeNotification

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeUpstream:
		return "UPSTREAM_ERROR"
	case ErrorTypeUnauthorized:
		return "UNAUTHORIZED_ERROR"
	case ErrorTypePermissionDenied:
		return "PERMISSION_DENIED_ERROR"
	case ErrorTypeUnsupported:
		return "UNSUPPORTED_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeNotification:
		return "NOTIFICATION_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the codebase
const (
	ValidationError       = ErrorTypeValidation
	NotFoundError         = ErrorTypeNotFound
	NetworkError          = ErrorTypeNetwork
	UpstreamError         = ErrorTypeUpstream
	UnauthorizedError     = ErrorTypeUnauthorized
	PermissionDeniedError = ErrorTypePermissionDenied
	UnsupportedError      = ErrorTypeUnsupported
	StorageError          = ErrorTypeStorage
	NotificationError     = ErrorTypeNotification
	ConfigurationError    = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Upstream error constructors
func NewNetworkError(message string, cause error) *AppError {
	return Wrap(NetworkError, message, cause)
}

func NewUpstreamError(message string, cause error) *AppError {
	return Wrap(UpstreamError, message, cause)
}

func NewUnauthorizedError(message string) *AppError {
	return New(UnauthorizedError, message)
}

// Platform capability constructors
func NewPermissionDeniedError(message string) *AppError {
	return New(PermissionDeniedError, message)
}

func NewUnsupportedError(message string) *AppError {
	return New(UnsupportedError, message)
}

// Infrastructure error constructors
func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

func NewNotificationError(message string, cause error) *AppError {
	return Wrap(NotificationError, message, cause)
}

// System/Configuration error constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain,
// or ErrorTypeUnknown when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// MessageOf returns the message of the first AppError in err's chain.
func MessageOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNetworkError(err error) bool {
	return TypeOf(err) == NetworkError
}

func IsUpstreamError(err error) bool {
	return TypeOf(err) == UpstreamError
}

func IsUnauthorizedError(err error) bool {
	return TypeOf(err) == UnauthorizedError
}

func IsStorageError(err error) bool {
	return TypeOf(err) == StorageError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
