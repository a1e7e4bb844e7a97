package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/internal/repository"
)

// ToggleLike likes the post for actor, or unlikes when actor already liked
// it. Returns true when the result is a like. There are no separate like and
// unlike endpoints; the toggle is the operation.
func (s *PostService) ToggleLike(ctx context.Context, postID, actor bson.ObjectID) (bool, error) {
	liked, err := s.posts.ToggleLike(ctx, postID, actor)
	if err == repository.ErrNotFound {
		return false, ErrPostNotFound
	}
	return liked, err
}
