package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/internal/model"
)

type mongoServiceRepository struct {
	coll *mongo.Collection
}

// NewMongoServiceRepository builds a MongoDB-backed repository.
func NewMongoServiceRepository(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepository{coll: db.Collection(ServicesCollection)}
}

func (r *mongoServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	services := make([]model.Service, 0)
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (r *mongoServiceRepository) Names(ctx context.Context) ([]model.ServiceName, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, fmt.Errorf("list service names: %w", err)
	}
	names := make([]model.ServiceName, 0)
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("decode service names: %w", err)
	}
	return names, nil
}

func (r *mongoServiceRepository) UpsertByName(ctx context.Context, service model.Service) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"name": service.Name},
		bson.M{"$set": bson.M{"name": service.Name, "slots": service.Slots}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert service %q: %w", service.Name, err)
	}
	return nil
}
