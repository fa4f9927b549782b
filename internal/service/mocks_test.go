package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doctorsportal/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Bool(1), args.Error(2)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, email string, profile map[string]interface{}) (*model.WriteResult, error) {
	args := m.Called(ctx, email, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email string, role model.Role) (*model.WriteResult, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WriteResult), args.Error(1)
}

// MockServiceRepository is a mock implementation of ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockServiceRepository) Names(ctx context.Context) ([]model.ServiceName, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceName), args.Error(1)
}

func (m *MockServiceRepository) UpsertByName(ctx context.Context, service model.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfAbsent(ctx context.Context, booking model.Booking) (model.BookingOutcome, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(model.BookingOutcome), args.Error(1)
}

func (m *MockBookingRepository) ListByPatient(ctx context.Context, patient string) ([]model.Booking, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

// MockDoctorRepository is a mock implementation of DoctorRepository.
type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor model.Doctor) (*model.InsertResult, error) {
	args := m.Called(ctx, doctor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InsertResult), args.Error(1)
}

func (m *MockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

// MockBookingObserver records booking outcomes.
type MockBookingObserver struct {
	mock.Mock
}

func (m *MockBookingObserver) ObserveBooking(created bool) {
	m.Called(created)
}
