package routes

import (
	"github.com/enterpriserag/backend/internal/config"
	"github.com/enterpriserag/backend/internal/handlers"
	"github.com/enterpriserag/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	documentHandler *handlers.DocumentHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")
	api.Get("/health", healthHandler.Check)

	// Auth — public
	auth := app.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Protected routes (JWT required)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)

	documents := app.Group("/documents", middleware.JWTProtected(cfg))
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
}
