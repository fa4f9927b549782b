package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctorsportal/internal/model"
)

type mongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository builds a MongoDB-backed repository.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{coll: db.Collection(UsersCollection)}
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	var user model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("find user: %w", err)
	}
	return user, true, nil
}

func (r *mongoUserRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *mongoUserRepository) Upsert(ctx context.Context, email string, profile map[string]interface{}) (*model.WriteResult, error) {
	set := bson.M{"email": email}
	for k, v := range profile {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return toWriteResult(res), nil
}

func (r *mongoUserRepository) SetRole(ctx context.Context, email string, role model.Role) (*model.WriteResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}
	return toWriteResult(res), nil
}
