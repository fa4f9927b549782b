package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped forbidden", fmt.Errorf("list bookings: %w", ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"missing date", ErrMissingDate, http.StatusBadRequest, "MISSING_DATE"},
		{"invalid booking", ErrInvalidBooking, http.StatusBadRequest, "INVALID_BOOKING"},
		{"invalid doctor", ErrInvalidDoctor, http.StatusBadRequest, "INVALID_DOCTOR"},
		{"invalid email", ErrInvalidEmail, http.StatusBadRequest, "INVALID_EMAIL"},
		{"store failure", errors.New("connection reset by peer"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.ToErrorResponse().Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetails(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("mongo: server selection timeout"))
	assert.Equal(t, "internal server error", httpErr.ToErrorResponse().Message)
}
