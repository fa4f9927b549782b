package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/internal/model"
)

type mongoDoctorRepository struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepository builds a MongoDB-backed repository.
func NewMongoDoctorRepository(db *mongo.Database) DoctorRepository {
	return &mongoDoctorRepository{coll: db.Collection(DoctorsCollection)}
}

func (r *mongoDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	doctors := make([]model.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *mongoDoctorRepository) Create(ctx context.Context, doctor model.Doctor) (*model.InsertResult, error) {
	doctor.ID = ""
	res, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}, nil
}

func (r *mongoDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("delete doctor: %w", err)
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
