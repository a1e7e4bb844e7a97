package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/internal/repository"
	"threads-backend/model"
)

// Feed returns posts by accounts the actor follows, newest first.
func (s *PostService) Feed(ctx context.Context, actor bson.ObjectID) ([]model.Post, error) {
	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.posts.FindByAuthors(ctx, user.Following)
}

// UserPosts returns all posts by username, newest first.
func (s *PostService) UserPosts(ctx context.Context, username string) ([]model.Post, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.posts.FindByAuthors(ctx, []bson.ObjectID{user.ID})
}
