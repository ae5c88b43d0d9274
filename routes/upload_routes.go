package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/handlers"
)

func UploadRoutes(app *fiber.App) {
	app.Post("/api/upload-image", handlers.UploadImage)
}
