package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrForbidden is returned when the requester may not see or change a resource.
	ErrForbidden = errors.New("forbidden access")
	// ErrMissingDate is returned when availability is requested without a date.
	ErrMissingDate = errors.New("date query parameter is required")
	// ErrInvalidBooking is returned when a booking lacks treatment, date, patient or slot.
	ErrInvalidBooking = errors.New("booking requires treatment, date, patient and slot")
	// ErrInvalidDoctor is returned when a doctor record has no email.
	ErrInvalidDoctor = errors.New("doctor requires an email")
	// ErrInvalidEmail is returned when a path email is empty.
	ErrInvalidEmail = errors.New("email is required")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
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
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors, including
// store failures, become a generic 500 so their details never reach clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrMissingDate):
		return NewHTTPError(http.StatusBadRequest, ErrMissingDate.Error(), "MISSING_DATE")
	case errors.Is(err, ErrInvalidBooking):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidBooking.Error(), "INVALID_BOOKING")
	case errors.Is(err, ErrInvalidDoctor):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidDoctor.Error(), "INVALID_DOCTOR")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidEmail.Error(), "INVALID_EMAIL")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
