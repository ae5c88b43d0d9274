package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/users", handlers.CreateUser)
	api.Get("/users/:userId", handlers.GetUser)

	api.Post("/contact", handlers.SubmitContact)
}
