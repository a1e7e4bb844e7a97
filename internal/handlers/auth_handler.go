package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"threads-backend/dto"
	"threads-backend/services"
)

// SignupHandler godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.SignupDTO  true  "Signup payload"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /users/signup [post]
func SignupHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SignupDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		resp, err := svc.Signup(ctx, body)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// LoginHandler godoc
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginDTO  true  "Login payload"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /users/login [post]
func LoginHandler(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
		defer cancel()

		resp, err := svc.Login(ctx, body)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(resp)
	}
}
