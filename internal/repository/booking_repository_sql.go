package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"doctorsportal/internal/model"
)

type sqlBookingRepository struct {
	db *gorm.DB
}

// NewSQLBookingRepository builds a GORM-backed repository.
func NewSQLBookingRepository(db *gorm.DB) BookingRepository {
	return &sqlBookingRepository{db: db}
}

// CreateIfAbsent relies on the idx_booking_once unique index: the insert is
// ignored on conflict and the surviving row is read back.
func (r *sqlBookingRepository) CreateIfAbsent(ctx context.Context, booking model.Booking) (model.BookingOutcome, error) {
	booking.ID = ""
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&booking)
	if res.Error != nil {
		return model.BookingOutcome{}, fmt.Errorf("create booking: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return model.BookingOutcome{
			Created: true,
			Result:  &model.InsertResult{Acknowledged: true, InsertedID: booking.ID},
		}, nil
	}

	var existing model.Booking
	err := r.db.WithContext(ctx).
		Where("treatment = ? AND date = ? AND patient = ?", booking.Treatment, booking.Date, booking.Patient).
		First(&existing).Error
	if err != nil {
		return model.BookingOutcome{}, fmt.Errorf("read existing booking: %w", err)
	}
	return model.BookingOutcome{Existing: &existing}, nil
}

func (r *sqlBookingRepository) ListByPatient(ctx context.Context, patient string) ([]model.Booking, error) {
	bookings := make([]model.Booking, 0)
	if err := r.db.WithContext(ctx).Where("patient = ?", patient).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *sqlBookingRepository) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	bookings := make([]model.Booking, 0)
	if err := r.db.WithContext(ctx).Where("date = ?", date).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
