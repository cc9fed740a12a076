package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-revshare/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeGone             ErrorCode = "gone"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// StatusCode returns the HTTP status of the error code
func (e *APIError) StatusCode() int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeGone:
		return http.StatusGone
	case ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the envelope every error is returned in
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// FromError maps an error returned by the revenue share service to an API error.
// Errors the caller cannot act on are reported as internal errors without details.
func FromError(err error, message string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidSource),
		errors.Is(err, domain.ErrInvalidWallet),
		errors.Is(err, domain.ErrInvalidDateRange):
		return NewValidationError(err.Error())
	case errors.Is(err, domain.ErrDistributionNotFound),
		errors.Is(err, domain.ErrNoShareForWallet):
		return NewNotFoundError(message, err.Error())
	case errors.Is(err, domain.ErrAlreadyClaimed),
		errors.Is(err, domain.ErrDuplicateDeposit),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrNoEligibleStakers),
		errors.Is(err, domain.ErrStorageConflict):
		return NewConflictError(message, err.Error())
	case errors.Is(err, domain.ErrDistributionExpired):
		return NewGoneError(message, err.Error())
	case errors.Is(err, domain.ErrStorageUnavailable):
		return NewServiceUnavailableError(message)
	default:
		return NewInternalError(message)
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewGoneError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeGone,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewServiceUnavailableError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeServiceUnavailable,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}
