package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/internal/repository"
	"threads-backend/model"
)

// Reply appends the actor's reply to a post, plus the bot's reply when the
// text mentions it. Both replies land in one atomic append, human first.
func (s *PostService) Reply(ctx context.Context, postID, actor bson.ObjectID, text string) ([]model.Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text field is required", ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	replies := []model.Reply{{
		UserID:         actor,
		Text:           text,
		UserProfilePic: user.ProfilePic,
		Username:       user.Username,
	}}
	if botReply := s.botReplyFor(ctx, text, user.Username); botReply != nil {
		replies = append(replies, *botReply)
	}

	if err := s.posts.AppendReplies(ctx, post.ID, replies...); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return replies, nil
}
