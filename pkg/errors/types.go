package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Pipeline errors
	ErrCodeGenerationFailed  ErrorCode = "GENERATION_FAILED"
	ErrCodeRenderFailed      ErrorCode = "RENDER_FAILED"
	ErrCodeSequenceViolation ErrorCode = "SEQUENCE_VIOLATION"
	ErrCodeRecordAbsent      ErrorCode = "RECORD_ABSENT"
	ErrCodePodcastExists     ErrorCode = "PODCAST_EXISTS"
	ErrCodeGenerationBusy    ErrorCode = "GENERATION_IN_PROGRESS"

	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Database errors
	ErrCodeDatabaseConnection ErrorCode = "DATABASE_CONNECTION"
	ErrCodeDatabaseQuery      ErrorCode = "DATABASE_QUERY"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// External service errors
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(cause error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(cause, code, fmt.Sprintf(format, args...))
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound, ErrCodeRecordAbsent:
		return http.StatusNotFound
	case ErrCodeSequenceViolation, ErrCodePodcastExists, ErrCodeGenerationBusy:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeInvalidInput, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeGenerationFailed, ErrCodeRenderFailed, ErrCodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Is checks if an error carries a specific code
func Is(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}

// SequenceViolation builds the rejection for a non-sequential episode request.
func SequenceViolation(requested, expected int) *AppError {
	return Newf(ErrCodeSequenceViolation, "episode %d requested but episode %d is next", requested, expected).
		WithDetail("requested_index", requested).
		WithDetail("expected_index", expected)
}

// RecordAbsent builds the rejection for a continuation with no stored podcast.
func RecordAbsent(userID string) *AppError {
	return Newf(ErrCodeRecordAbsent, "no podcast exists for user %s", userID).
		WithDetail("user_id", userID)
}

// GenerationFailed wraps a text-completion failure.
func GenerationFailed(step string, cause error) *AppError {
	return Wrapf(cause, ErrCodeGenerationFailed, "generating %s failed", step).
		WithDetail("step", step)
}

// RenderFailed wraps a speech-synthesis or artifact-write failure.
func RenderFailed(key string, cause error) *AppError {
	return Wrapf(cause, ErrCodeRenderFailed, "rendering %s failed", key).
		WithDetail("destination_key", key)
}
