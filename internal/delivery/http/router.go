package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/weatherchat/backend/internal/chat"
)

// SetupRoutes configures all HTTP routes.
func SetupRoutes(app *fiber.App, manager *chat.Manager) {
	handler := NewHandler(manager)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Post("/sessions", handler.CreateSession)
		api.Get("/sessions/:id/messages", handler.GetMessages)
		api.Post("/sessions/:id/messages", handler.PostMessage)
		api.Put("/sessions/:id/language", handler.SetLanguage)
		api.Delete("/sessions/:id/messages", handler.ClearMessages)
	}
}
