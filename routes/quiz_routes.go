package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/handlers"
)

func QuizRoutes(app *fiber.App) {
	quizzes := app.Group("/api/quizzes")

	quizzes.Post("", handlers.CreateQuiz)

	// Specific lookups come before the numeric ID route.
	quizzes.Get("/code/:accessCode", handlers.GetQuizByAccessCode)
	quizzes.Get("/slug/:urlSlug", handlers.GetQuizBySlug)
	quizzes.Get("/dashboard/:token", handlers.GetQuizByDashboardToken)

	quizzes.Get("/:quizId", handlers.GetQuiz)
	quizzes.Get("/:quizId/questions", handlers.ListQuizQuestions)
	quizzes.Get("/:quizId/attempts", handlers.ListQuizAttempts)
}
