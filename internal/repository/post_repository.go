package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"threads-backend/model"
)

// ErrNotFound is returned when a record is absent, as opposed to a
// transport or driver failure.
var ErrNotFound = errors.New("not found")

// PostStore is the storage boundary for posts. Like and reply mutations are
// atomic server-side updates rather than read-modify-write, so concurrent
// requests against the same post cannot lose each other's writes.
type PostStore interface {
	Insert(ctx context.Context, post model.Post) (model.Post, error)
	FindByID(ctx context.Context, id bson.ObjectID) (model.Post, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	// ToggleLike adds actor to the likes set, or removes it if already
	// present. Returns true when the result is a like.
	ToggleLike(ctx context.Context, id, actor bson.ObjectID) (bool, error)
	AppendReplies(ctx context.Context, id bson.ObjectID, replies ...model.Reply) error
	// FindByAuthors returns posts by any of the given authors, newest first.
	FindByAuthors(ctx context.Context, authors []bson.ObjectID) ([]model.Post, error)
}

type mongoPostRepo struct {
	col *mongo.Collection
}

func NewMongoPostRepo(db *mongo.Database) PostStore {
	return &mongoPostRepo{col: db.Collection("posts")}
}

func (r *mongoPostRepo) Insert(ctx context.Context, post model.Post) (model.Post, error) {
	if post.Likes == nil {
		post.Likes = []bson.ObjectID{}
	}
	if post.Replies == nil {
		post.Replies = []model.Reply{}
	}
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return model.Post{}, err
	}
	post.ID = res.InsertedID.(bson.ObjectID)
	return post, nil
}

func (r *mongoPostRepo) FindByID(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	var post model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrNotFound
	}
	if err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (r *mongoPostRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike first tries a guarded $addToSet (only matches when actor is not
// yet in likes); if nothing matched, it falls back to $pull. Both paths are a
// single conditional update, so two racing toggles cannot drop each other.
func (r *mongoPostRepo) ToggleLike(ctx context.Context, id, actor bson.ObjectID) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "likes": bson.M{"$ne": actor}},
		bson.M{"$addToSet": bson.M{"likes": actor}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 1 {
		return true, nil
	}

	res, err = r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"likes": actor}},
	)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return false, nil
}

func (r *mongoPostRepo) AppendReplies(ctx context.Context, id bson.ObjectID, replies ...model.Reply) error {
	if len(replies) == 0 {
		return nil
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"replies": bson.M{"$each": replies}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoPostRepo) FindByAuthors(ctx context.Context, authors []bson.ObjectID) ([]model.Post, error) {
	if len(authors) == 0 {
		return []model.Post{}, nil
	}

	findOpt := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"posted_by": bson.M{"$in": authors}}, findOpt)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}
