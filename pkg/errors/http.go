package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the HTTP status and the machine-readable
// code rendered in the response envelope.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]any
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details map[string]any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrValidation      = NewHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed")
	ErrRateLimited     = NewHTTPError(http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please slow down")
	ErrInternalServer  = NewHTTPError(http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	ErrServiceNotReady = NewHTTPError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Service is not ready")
)
