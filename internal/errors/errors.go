package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when a bearer token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownUser is returned when a verified token names a user that does not exist.
	ErrUnknownUser = errors.New("invalid user")
	// ErrUserNotFound is returned by user repositories.
	ErrUserNotFound = errors.New("user not found")
	// ErrRequirementNotFound is returned when no requirement has the given id,
	// and also when the caller may not see it.
	ErrRequirementNotFound = errors.New("requirement with supplied ID does not exist")
	// ErrForbidden is returned when the caller is neither the owner nor an admin.
	ErrForbidden = errors.New("you do not have permission to modify this requirement")
	// ErrMissingPayload is returned when the role specific create payload is absent.
	ErrMissingPayload = errors.New("requirement payload for the caller role is required")
	// ErrInvalidID is returned when a path id is not an integer.
	ErrInvalidID = errors.New("invalid requirement id")
	// ErrIntegrationMissing is returned when the caller has no partner token.
	ErrIntegrationMissing = errors.New("user has no home design integration")
	// ErrPartnerDisabled is returned when the partner API is not configured.
	ErrPartnerDisabled = errors.New("home design integration is not configured")
)

// ValidationError reports a value that is not part of its reference list.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s not found in the list", e.Field)
}

// UpstreamError carries a non-success response from the partner API.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (partner status %d)", e.Message, e.StatusCode)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// IsInternal reports whether the error has no domain mapping.
func IsInternal(err error) bool {
	return MapErrorToHTTP(err).StatusCode == http.StatusInternalServerError
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	var upstreamErr *UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusUnprocessableEntity, validationErr.Error(), "VALIDATION_FAILED")
	case errors.As(err, &upstreamErr):
		return NewHTTPError(upstreamErr.StatusCode, upstreamErr.Message, "UPSTREAM_ERROR")
	case errors.Is(err, ErrMissingPayload):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "MISSING_PAYLOAD")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrUnknownUser):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_USER")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrIntegrationMissing):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INTEGRATION_MISSING")
	case errors.Is(err, ErrRequirementNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUIREMENT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPartnerDisabled):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "PARTNER_DISABLED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
