package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"doctorsportal/internal/model"
)

// Collection names shared by both stores. SQL tables use the same names.
const (
	UsersCollection    = "users"
	ServicesCollection = "services"
	BookingCollection  = "booking"
	DoctorsCollection  = "doctors"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	// FindByEmail reports found=false, with no error, when no user has the email.
	FindByEmail(ctx context.Context, email string) (user model.User, found bool, err error)
	List(ctx context.Context) ([]model.User, error)
	// Upsert merges profile into the user keyed by email, creating it if needed.
	Upsert(ctx context.Context, email string, profile map[string]interface{}) (*model.WriteResult, error)
	SetRole(ctx context.Context, email string, role model.Role) (*model.WriteResult, error)
}

// ServiceRepository defines service catalog persistence operations.
type ServiceRepository interface {
	List(ctx context.Context) ([]model.Service, error)
	Names(ctx context.Context) ([]model.ServiceName, error)
	UpsertByName(ctx context.Context, service model.Service) error
}

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	// CreateIfAbsent inserts the booking unless one already exists for the
	// same treatment, date and patient, in which case that one is returned.
	// The check and the insert are a single atomic operation.
	CreateIfAbsent(ctx context.Context, booking model.Booking) (model.BookingOutcome, error)
	ListByPatient(ctx context.Context, patient string) ([]model.Booking, error)
	ListByDate(ctx context.Context, date string) ([]model.Booking, error)
}

// DoctorRepository defines doctor persistence operations.
type DoctorRepository interface {
	List(ctx context.Context) ([]model.Doctor, error)
	Create(ctx context.Context, doctor model.Doctor) (*model.InsertResult, error)
	DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error)
}

// Store bundles the repositories of one backing database.
type Store struct {
	Users    UserRepository
	Services ServiceRepository
	Bookings BookingRepository
	Doctors  DoctorRepository
}

// NewMongoStore builds repositories over a MongoDB database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:    NewMongoUserRepository(db),
		Services: NewMongoServiceRepository(db),
		Bookings: NewMongoBookingRepository(db),
		Doctors:  NewMongoDoctorRepository(db),
	}
}

// NewSQLStore builds GORM-backed repositories.
func NewSQLStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewSQLUserRepository(db),
		Services: NewSQLServiceRepository(db),
		Bookings: NewSQLBookingRepository(db),
		Doctors:  NewSQLDoctorRepository(db),
	}
}
