package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/dto"
	mid "threads-backend/internal/middleware"
	"threads-backend/services"
)

// LikeTogglePostHandler godoc
// @Summary      Like or unlike a post
// @Description  Toggles: a second call by the same user undoes the first
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post ID (hex)"
// @Success      200  {object}  dto.LikeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/like/{id} [put]
func LikeTogglePostHandler(svc *services.PostService) fiber.Handler {
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

		liked, err := svc.ToggleLike(ctx, postID, actor)
		if err != nil {
			return jsonError(c, err)
		}

		msg := "Post unliked successfully"
		if liked {
			msg = "Post liked successfully"
		}
		return c.JSON(dto.LikeResponse{Message: msg, Liked: liked})
	}
}
