package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/dto"
	mid "threads-backend/internal/middleware"
	"threads-backend/services"
)

// createTimeout is generous because creation may block on the bot call;
// the bot client applies its own tighter bound on top.
const createTimeout = 60 * time.Second

const dbTimeout = 5 * time.Second

// CreatePostHandler godoc
// @Summary      Create a post
// @Description  Create a new post with optional image; mentions of @threadbot trigger a bot reply
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data  body      dto.CreatePostDTO  true  "Post payload"
// @Success      201   {object}  model.Post
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /posts/create [post]
func CreatePostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := mid.ActorFromLocals(c)
		if err != nil {
			return err
		}

		var body dto.CreatePostDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()

		post, err := svc.Create(ctx, body, actor)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

// GetPostHandler godoc
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post ID (hex)"
// @Success      200  {object}  model.Post
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid post id"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		post, err := svc.Get(ctx, postID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Owner-only; removes the stored image as well
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := mid.ActorFromLocals(c)
		if err != nil {
			return err
		}
		postID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid post id"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		if err := svc.Delete(ctx, postID, actor); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(dto.MessageResponse{Message: "Post deleted successfully"})
	}
}
