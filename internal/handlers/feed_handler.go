package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"threads-backend/dto"
	mid "threads-backend/internal/middleware"
	"threads-backend/services"
)

// GetFeedHandler godoc
// @Summary      Get the home feed
// @Description  Posts by followed accounts, newest first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Post
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/feed [get]
func GetFeedHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := mid.ActorFromLocals(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		posts, err := svc.Feed(ctx, actor)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(posts)
	}
}

// GetUserPostsHandler godoc
// @Summary      Get a user's posts
// @Tags         posts
// @Produce      json
// @Param        username  path  string  true  "Username"
// @Success      200  {array}   model.Post
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/user/{username} [get]
func GetUserPostsHandler(svc *services.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")
		if username == "" {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "missing username"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		posts, err := svc.UserPosts(ctx, username)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(posts)
	}
}
