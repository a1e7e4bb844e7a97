package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/configs"
	"threads-backend/dto"
	"threads-backend/internal/bot"
	"threads-backend/internal/imagestore"
	"threads-backend/internal/repository"
	"threads-backend/model"
)

// PostService orchestrates the post lifecycle: create, read, delete, likes,
// replies, feeds, and the mention-triggered bot reply.
type PostService struct {
	posts  repository.PostStore
	users  repository.UserStore
	images imagestore.Store
	bot    bot.Replier
}

// NewPostService wires the service. bot may be nil when no model API key is
// configured; mentions are then logged and skipped.
func NewPostService(posts repository.PostStore, users repository.UserStore, images imagestore.Store, replier bot.Replier) *PostService {
	return &PostService{posts: posts, users: users, images: images, bot: replier}
}

// Create validates input, resolves the author, uploads the optional image,
// persists the post, and appends a bot reply when the text mentions the bot.
func (s *PostService) Create(ctx context.Context, body dto.CreatePostDTO, actor bson.ObjectID) (model.Post, error) {
	if body.PostedBy == "" || body.Text == "" {
		return model.Post{}, fmt.Errorf("%w: postedBy and text fields are required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(body.Text) > configs.MaxPostTextLen {
		return model.Post{}, fmt.Errorf("%w: text must be less than %d characters", ErrInvalidInput, configs.MaxPostTextLen)
	}
	postedBy, err := bson.ObjectIDFromHex(body.PostedBy)
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: invalid postedBy", ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, postedBy)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Post{}, ErrUserNotFound
		}
		return model.Post{}, err
	}
	if user.ID != actor {
		return model.Post{}, fmt.Errorf("%w to create post", ErrUnauthorized)
	}

	post := model.Post{
		PostedBy:  postedBy,
		Text:      body.Text,
		CreatedAt: time.Now().UTC(),
	}
	if body.Img != "" {
		img, err := s.images.Upload(ctx, body.Img)
		if err != nil {
			return model.Post{}, fmt.Errorf("upload image: %w", err)
		}
		post.Img = img.URL
		post.ImgID = img.ID
	}

	created, err := s.posts.Insert(ctx, post)
	if err != nil {
		return model.Post{}, err
	}

	if reply := s.botReplyFor(ctx, created.Text, user.Username); reply != nil {
		if err := s.posts.AppendReplies(ctx, created.ID, *reply); err != nil {
			return model.Post{}, err
		}
		created.Replies = append(created.Replies, *reply)
	}

	return created, nil
}

// Get returns a post by id unchanged.
func (s *PostService) Get(ctx context.Context, id bson.ObjectID) (model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err == repository.ErrNotFound {
		return model.Post{}, ErrPostNotFound
	}
	return post, err
}

// Delete removes a post and its stored image. Only the owner may delete.
func (s *PostService) Delete(ctx context.Context, id, actor bson.ObjectID) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return ErrPostNotFound
		}
		return err
	}
	if post.PostedBy != actor {
		return fmt.Errorf("%w to delete post", ErrUnauthorized)
	}

	if post.Img != "" {
		imgID := post.ImgID
		if imgID == "" {
			// Legacy posts predate the stored id field.
			imgID = imagestore.DeriveID(post.Img)
		}
		if err := s.images.Destroy(ctx, imgID); err != nil {
			log.Printf("destroy image %s: %v", imgID, err)
		}
	}

	err = s.posts.Delete(ctx, id)
	if err == repository.ErrNotFound {
		return ErrPostNotFound
	}
	return err
}
