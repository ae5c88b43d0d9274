package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/handlers"
	"github.com/qzonme/qzonme-backend/middleware"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Post("/login", handlers.AdminLogin)

	protected := admin.Group("", middleware.Protected(), middleware.AdminRequired())
	protected.Get("/quizzes", handlers.AdminListQuizzes)
	protected.Post("/cleanup", handlers.AdminRunCleanup)
}
