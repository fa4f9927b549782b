package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/internal/model"
)

type mongoBookingRepository struct {
	coll *mongo.Collection
}

// NewMongoBookingRepository builds a MongoDB-backed repository.
func NewMongoBookingRepository(db *mongo.Database) BookingRepository {
	return &mongoBookingRepository{coll: db.Collection(BookingCollection)}
}

// CreateIfAbsent upserts on the (treatment, date, patient) key with
// $setOnInsert and asks for the pre-image: no pre-image means this call
// inserted the document.
func (r *mongoBookingRepository) CreateIfAbsent(ctx context.Context, booking model.Booking) (model.BookingOutcome, error) {
	key := bookingKey(booking)
	id := primitive.NewObjectID()

	insert := bson.M{}
	for k, v := range booking.Extra {
		insert[k] = v
	}
	insert["_id"] = id
	insert["slot"] = booking.Slot
	if booking.PatientName != "" {
		insert["patientName"] = booking.PatientName
	}
	if booking.Phone != "" {
		insert["phone"] = booking.Phone
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)
	var existing model.Booking
	err := r.coll.FindOneAndUpdate(ctx, key, bson.M{"$setOnInsert": insert}, opts).Decode(&existing)
	switch {
	case err == nil:
		return model.BookingOutcome{Existing: &existing}, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return model.BookingOutcome{
			Created: true,
			Result:  &model.InsertResult{Acknowledged: true, InsertedID: id.Hex()},
		}, nil
	case mongo.IsDuplicateKeyError(err):
		// Two upserts raced; the unique index let exactly one insert win.
		if err := r.coll.FindOne(ctx, key).Decode(&existing); err != nil {
			return model.BookingOutcome{}, fmt.Errorf("read winning booking: %w", err)
		}
		return model.BookingOutcome{Existing: &existing}, nil
	default:
		return model.BookingOutcome{}, fmt.Errorf("create booking: %w", err)
	}
}

func (r *mongoBookingRepository) ListByPatient(ctx context.Context, patient string) ([]model.Booking, error) {
	return r.find(ctx, bson.M{"patient": patient})
}

func (r *mongoBookingRepository) ListByDate(ctx context.Context, date string) ([]model.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *mongoBookingRepository) find(ctx context.Context, filter bson.M) ([]model.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	bookings := make([]model.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func bookingKey(b model.Booking) bson.M {
	return bson.M{"treatment": b.Treatment, "date": b.Date, "patient": b.Patient}
}
