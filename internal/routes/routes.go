package routes

import (
	"github.com/gofiber/fiber/v2"

	"threads-backend/internal/handlers"
	"threads-backend/internal/middleware"
	"threads-backend/services"
)

// Deps holds shared dependencies to inject into handlers.
type Deps struct {
	Posts *services.PostService
	Auth  *services.AuthService
}

// Register mounts all HTTP routes in one place.
// Keep paths lowercase, grouped by resource, and easy to discover.
func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	// ============================================================
	// Users
	// ============================================================
	users := api.Group("/users")

	users.Post("/signup", handlers.SignupHandler(d.Auth))
	users.Post("/login", handlers.LoginHandler(d.Auth))

	// ============================================================
	// Posts
	// ============================================================
	posts := api.Group("/posts")

	// Reads are open; everything that mutates requires auth.
	posts.Get("/feed", middleware.RequireAuth(), handlers.GetFeedHandler(d.Posts))
	posts.Get("/user/:username", handlers.GetUserPostsHandler(d.Posts))
	posts.Get("/:id", handlers.GetPostHandler(d.Posts))

	posts.Post("/create", middleware.RequireAuth(), handlers.CreatePostHandler(d.Posts))
	posts.Delete("/:id", middleware.RequireAuth(), handlers.DeletePostHandler(d.Posts))
	posts.Put("/like/:id", middleware.RequireAuth(), handlers.LikeTogglePostHandler(d.Posts))
	posts.Put("/reply/:id", middleware.RequireAuth(), handlers.ReplyToPostHandler(d.Posts))

	// ============================================================
	// Misc
	// ============================================================

	// Health check
	// GET /api/healthz -> "ok"
	api.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
}
