package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/handlers"
)

func QuestionRoutes(app *fiber.App) {
	questions := app.Group("/api/questions")

	questions.Post("", handlers.CreateQuestion)
	questions.Post("/:questionId/verify", handlers.VerifyAnswer)
}
