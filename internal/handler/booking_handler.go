package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"doctorsportal/internal/auth"
	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookings service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// CreateBookingRequest represents a booking request.
type CreateBookingRequest struct {
	Treatment   string `json:"treatment" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Patient     string `json:"patient" validate:"required"`
	Slot        string `json:"slot" validate:"required"`
	PatientName string `json:"patientName,omitempty"`
	Phone       string `json:"phone,omitempty"`

	// Extra holds every other field of the body; it is stored with the booking.
	Extra map[string]interface{} `json:"-" swaggerignore:"true"`
}

// UnmarshalJSON decodes the typed fields and keeps the whole body in Extra.
func (r *CreateBookingRequest) UnmarshalJSON(data []byte) error {
	type plain CreateBookingRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}
	return json.Unmarshal(data, &r.Extra)
}

// CreateBookingResponse reports either the new booking id or the booking
// that already holds the treatment and date for this patient.
type CreateBookingResponse struct {
	Success bool                `json:"success"`
	Result  *model.InsertResult `json:"result,omitempty"`
	Booking *model.Booking      `json:"booking,omitempty"`
}

// ListBookings godoc
// @Summary List a patient's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param patient query string true "Patient email, must match the token"
// @Success 200 {array} model.Booking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /booking [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookings.ListForPatient(c.Request().Context(), c.QueryParam("patient"), auth.EmailFromContext(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// CreateBooking godoc
// @Summary Book a slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Booking data"
// @Success 200 {object} CreateBookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /booking [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return serviceError(errors.ErrInvalidBooking)
	}

	outcome, err := h.bookings.Create(c.Request().Context(), model.Booking{
		Treatment:   req.Treatment,
		Date:        req.Date,
		Patient:     req.Patient,
		Slot:        req.Slot,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Extra:       req.Extra,
	})
	if err != nil {
		return serviceError(err)
	}

	if !outcome.Created {
		return c.JSON(http.StatusOK, CreateBookingResponse{Success: false, Booking: outcome.Existing})
	}
	return c.JSON(http.StatusOK, CreateBookingResponse{Success: true, Result: outcome.Result})
}
