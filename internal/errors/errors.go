// Package errors provides the structured error type returned across the
// stockswipe API. Handlers render AppError as {"error": {"code", "message"}}
// and never expose the wrapped internal error to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so wrapped copies of a
// sentinel still satisfy errors.Is(err, ErrXxx).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Insight errors. ErrInsightUnavailable is the retryable failure marker for
// the rationale endpoint.
var (
	ErrInsightUnavailable = &AppError{Code: "INSIGHT_UNAVAILABLE", Message: "AI insight is unavailable, try again", StatusCode: http.StatusBadGateway}
	ErrLLMNotConfigured   = &AppError{Code: "LLM_NOT_CONFIGURED", Message: "No model credentials configured", StatusCode: http.StatusServiceUnavailable}
)

// Weekly picks errors.
var (
	ErrPicksUnavailable = &AppError{Code: "PICKS_UNAVAILABLE", Message: "Weekly picks are missing or outdated, trigger /api/picks/generate", StatusCode: http.StatusNotFound}
	ErrPicksGeneration  = &AppError{Code: "PICKS_GENERATION_FAILED", Message: "Failed to generate weekly picks", StatusCode: http.StatusBadGateway}
)
