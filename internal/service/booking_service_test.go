package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/model"
)

func TestBookingService_Create(t *testing.T) {
	booking := model.Booking{Treatment: "Cleaning", Date: "2024-01-01", Patient: "p@x.com", Slot: "9:00"}
	existing := booking
	existing.ID = "b-1"

	tests := []struct {
		name        string
		input       model.Booking
		setupMock   func(*MockBookingRepository, *MockBookingObserver)
		wantCreated bool
		wantErr     error
	}{
		{
			name:  "first booking is created",
			input: booking,
			setupMock: func(r *MockBookingRepository, o *MockBookingObserver) {
				r.On("CreateIfAbsent", mock.Anything, booking).Return(model.BookingOutcome{
					Created: true,
					Result:  &model.InsertResult{Acknowledged: true, InsertedID: "b-1"},
				}, nil)
				o.On("ObserveBooking", true).Return()
			},
			wantCreated: true,
		},
		{
			name:  "duplicate returns existing",
			input: booking,
			setupMock: func(r *MockBookingRepository, o *MockBookingObserver) {
				r.On("CreateIfAbsent", mock.Anything, booking).Return(model.BookingOutcome{Existing: &existing}, nil)
				o.On("ObserveBooking", false).Return()
			},
		},
		{
			name:  "values are stored exactly as sent",
			input: model.Booking{Treatment: "Cleaning", Date: " 2024-01-01", Patient: "p@x.com", Slot: "9:00 "},
			setupMock: func(r *MockBookingRepository, o *MockBookingObserver) {
				r.On("CreateIfAbsent", mock.Anything, model.Booking{Treatment: "Cleaning", Date: " 2024-01-01", Patient: "p@x.com", Slot: "9:00 "}).
					Return(model.BookingOutcome{Existing: &existing}, nil)
				o.On("ObserveBooking", false).Return()
			},
		},
		{
			name:  "extra fields kept without typed keys",
			input: model.Booking{Treatment: "Cleaning", Date: "2024-01-01", Patient: "p@x.com", Slot: "9:00", Extra: map[string]interface{}{"price": 25, "slot": "9:00", "$where": "1"}},
			setupMock: func(r *MockBookingRepository, o *MockBookingObserver) {
				withExtra := booking
				withExtra.Extra = map[string]interface{}{"price": 25}
				r.On("CreateIfAbsent", mock.Anything, withExtra).Return(model.BookingOutcome{
					Created: true,
					Result:  &model.InsertResult{Acknowledged: true, InsertedID: "b-1"},
				}, nil)
				o.On("ObserveBooking", true).Return()
			},
			wantCreated: true,
		},
		{
			name:      "whitespace-only patient rejected",
			input:     model.Booking{Treatment: "Cleaning", Date: "2024-01-01", Patient: "   ", Slot: "9:00"},
			setupMock: func(*MockBookingRepository, *MockBookingObserver) {},
			wantErr:   apperrors.ErrInvalidBooking,
		},
		{
			name:      "missing slot rejected",
			input:     model.Booking{Treatment: "Cleaning", Date: "2024-01-01", Patient: "p@x.com"},
			setupMock: func(*MockBookingRepository, *MockBookingObserver) {},
			wantErr:   apperrors.ErrInvalidBooking,
		},
		{
			name:      "missing date rejected",
			input:     model.Booking{Treatment: "Cleaning", Patient: "p@x.com", Slot: "9:00"},
			setupMock: func(*MockBookingRepository, *MockBookingObserver) {},
			wantErr:   apperrors.ErrInvalidBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			obs := new(MockBookingObserver)
			tt.setupMock(repo, obs)

			svc := NewBookingService(repo, obs, zerolog.Nop())
			out, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, out.Created)
				if tt.wantCreated {
					assert.Equal(t, "b-1", out.Result.InsertedID)
				} else {
					assert.Equal(t, "Cleaning", out.Existing.Treatment)
				}
			}

			repo.AssertExpectations(t)
			obs.AssertExpectations(t)
		})
	}
}

func TestBookingService_CreatePropagatesStoreErrors(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(model.BookingOutcome{}, errors.New("boom"))

	svc := NewBookingService(repo, nil, zerolog.Nop())
	_, err := svc.Create(context.Background(), model.Booking{Treatment: "t", Date: "d", Patient: "p", Slot: "s"})

	assert.EqualError(t, err, "boom")
}

func TestBookingService_ListForPatient(t *testing.T) {
	bookings := []model.Booking{{Treatment: "Cleaning", Date: "2024-01-01", Patient: "a@x.com", Slot: "9:00"}}

	t.Run("own bookings", func(t *testing.T) {
		repo := new(MockBookingRepository)
		repo.On("ListByPatient", mock.Anything, "a@x.com").Return(bookings, nil)

		got, err := NewBookingService(repo, nil, zerolog.Nop()).ListForPatient(context.Background(), "a@x.com", "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, bookings, got)
		repo.AssertExpectations(t)
	})

	t.Run("someone else's bookings are forbidden", func(t *testing.T) {
		repo := new(MockBookingRepository)

		got, err := NewBookingService(repo, nil, zerolog.Nop()).ListForPatient(context.Background(), "a@x.com", "b@x.com")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Nil(t, got)
		repo.AssertNotCalled(t, "ListByPatient", mock.Anything, mock.Anything)
	})

	t.Run("missing patient is forbidden", func(t *testing.T) {
		repo := new(MockBookingRepository)

		_, err := NewBookingService(repo, nil, zerolog.Nop()).ListForPatient(context.Background(), "", "b@x.com")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}
