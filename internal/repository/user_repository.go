package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"threads-backend/model"
)

// UserStore resolves user identities. Owned by the identity side of the
// system; the post service only reads profile snapshots from it.
type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Insert(ctx context.Context, user model.User) (model.User, error)
}

type mongoUserRepo struct {
	col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) UserStore {
	return &mongoUserRepo{col: db.Collection("users")}
}

func (r *mongoUserRepo) FindByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *mongoUserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (r *mongoUserRepo) Insert(ctx context.Context, user model.User) (model.User, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}
