package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

// bookingFields are the keys Booking stores as typed fields.
var bookingFields = []string{"treatment", "date", "patient", "slot", "patientName", "phone"}

// BookingObserver is notified of every booking attempt.
type BookingObserver interface {
	ObserveBooking(created bool)
}

// BookingService is the booking ledger.
type BookingService interface {
	// Create books a slot unless the patient already holds a booking for the
	// same treatment and date. A duplicate is a normal outcome, not an error.
	Create(ctx context.Context, booking model.Booking) (model.BookingOutcome, error)
	// ListForPatient returns the patient's bookings to that patient only.
	ListForPatient(ctx context.Context, patient, requester string) ([]model.Booking, error)
}

type bookingService struct {
	repo     repository.BookingRepository
	observer BookingObserver
	logger   zerolog.Logger
}

// NewBookingService creates a new booking service. observer may be nil.
func NewBookingService(repo repository.BookingRepository, observer BookingObserver, logger zerolog.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		observer: observer,
		logger:   logger,
	}
}

func (s *bookingService) Create(ctx context.Context, booking model.Booking) (model.BookingOutcome, error) {
	// values are stored exactly as sent; only blank ones are refused
	for _, v := range []string{booking.Treatment, booking.Date, booking.Patient, booking.Slot} {
		if strings.TrimSpace(v) == "" {
			return model.BookingOutcome{}, errors.ErrInvalidBooking
		}
	}
	booking.Extra = sanitizeFields(booking.Extra, bookingFields...)

	outcome, err := s.repo.CreateIfAbsent(ctx, booking)
	if err != nil {
		return model.BookingOutcome{}, err
	}

	if s.observer != nil {
		s.observer.ObserveBooking(outcome.Created)
	}
	s.logger.Debug().
		Str("treatment", booking.Treatment).
		Str("date", booking.Date).
		Bool("created", outcome.Created).
		Msg("booking attempt")

	return outcome, nil
}

func (s *bookingService) ListForPatient(ctx context.Context, patient, requester string) ([]model.Booking, error) {
	if patient == "" || patient != requester {
		return nil, errors.ErrForbidden
	}
	return s.repo.ListByPatient(ctx, patient)
}
