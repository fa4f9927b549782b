package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/internal/model"
)

// EnsureMongoIndexes creates the indexes the repositories rely on. The
// booking index is what makes duplicate bookings impossible under
// concurrent requests.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ServicesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		BookingCollection: {
			{
				Keys:    bson.D{{Key: "treatment", Value: 1}, {Key: "date", Value: 1}, {Key: "patient", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("booking_once"),
			},
			{Keys: bson.D{{Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "patient", Value: 1}}},
		},
		DoctorsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func toWriteResult(res *mongo.UpdateResult) *model.WriteResult {
	out := &model.WriteResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		out.UpsertedID = &id
	}
	return out
}
