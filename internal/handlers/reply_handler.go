package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/dto"
	mid "threads-backend/internal/middleware"
	"threads-backend/services"
)

// ReplyToPostHandler godoc
// @Summary      Reply to a post
// @Description  Appends the reply; mentions of @threadbot append a bot reply after it
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string        true  "Post ID (hex)"
// @Param        data  body  dto.ReplyDTO  true  "Reply payload"
// @Success      200  {array}   model.Reply
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /posts/reply/{id} [put]
func ReplyToPostHandler(svc *services.PostService) fiber.Handler {
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

		var body dto.ReplyDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		// Same generous bound as create; the reply path can block on the bot.
		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()

		replies, err := svc.Reply(ctx, postID, actor, body.Text)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(replies)
	}
}
