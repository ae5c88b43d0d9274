package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/handlers"
)

func AttemptRoutes(app *fiber.App) {
	attempts := app.Group("/api/quiz-attempts")

	attempts.Post("", handlers.CreateQuizAttempt)
	attempts.Get("/:attemptId", handlers.GetQuizAttempt)
}
