package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"threads-backend/database"
	_ "threads-backend/docs"
	"threads-backend/internal/bot"
	"threads-backend/internal/imagestore"
	"threads-backend/internal/middleware"
	"threads-backend/internal/repository"
	"threads-backend/internal/routes"
	"threads-backend/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	if os.Getenv("JWT_SECRET") == "" {
		panic("JWT_SECRET is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// --- MongoDB Connection ---
	client := database.ConnectMongo()
	defer database.DisconnectMongo(client)
	db := client.Database(database.DBName())

	posts := repository.NewMongoPostRepo(db)
	users := repository.NewMongoUserRepo(db)

	// --- Image storage ---
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
	}
	images, err := imagestore.NewDiskStore(uploadsDir, baseURL)
	if err != nil {
		log.Fatalf("image store: %v", err)
	}

	// --- Bot reply client (optional) ---
	var replier bot.Replier
	if os.Getenv("GOOGLE_API_KEY") != "" {
		c, err := bot.NewClient(context.Background())
		if err != nil {
			log.Printf("bot client disabled: %v", err)
		} else {
			replier = c
		}
	} else {
		log.Println("GOOGLE_API_KEY not set, bot replies disabled")
	}

	postSvc := services.NewPostService(posts, users, images, replier)
	authSvc := services.NewAuthService(users)

	// --- Fiber App Setup ---
	app := fiber.New()

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger docs
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Use(middleware.JWTUidOnly())

	app.Static("/uploads", uploadsDir)

	routes.Register(app, routes.Deps{
		Posts: postSvc,
		Auth:  authSvc,
	})

	log.Printf("listening at http://localhost:%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
