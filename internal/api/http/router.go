package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrdesk/internal/api/http/handlers"
	"github.com/spec-kit/hrdesk/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	chatGroup := app.Group("/chat", cfg.AuthMiddleware.Handle)
	chatGroup.Post("/messages", cfg.Chat.Message)
	chatGroup.Get("/transcript", cfg.Chat.Transcript)
}
