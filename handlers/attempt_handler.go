package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/database"
	"github.com/qzonme/qzonme-backend/models"
	"github.com/qzonme/qzonme-backend/services"
)

type QuizAttemptRequest struct {
	QuizID         uint                    `json:"quizId" validate:"required"`
	UserAnswerID   uint                    `json:"userAnswerId"`
	UserName       string                  `json:"userName" validate:"required"`
	Score          int                     `json:"score"`
	TotalQuestions int                     `json:"totalQuestions" validate:"min=0"`
	Answers        []models.QuestionAnswer `json:"answers" validate:"required,min=1"`
}

func CreateQuizAttempt(c *fiber.Ctx) error {
	var req QuizAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(req.Answers) != req.TotalQuestions {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Answers must contain exactly one entry per question",
		})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", req.QuizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if quiz.Expired() {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"message": "Quiz expired", "expired": true})
	}

	// The stored score is derived from the verified answers, not taken on
	// faith from the client, and is always bounded by the question count.
	score, _ := services.CalculateScore(req.Answers)
	if score != req.Score {
		log.Printf("Score mismatch for quiz %d by %q: client sent %d, answers count %d",
			req.QuizID, req.UserName, req.Score, score)
	}
	score = services.ClampScore(score, req.TotalQuestions)

	attempt := models.QuizAttempt{
		QuizID:         req.QuizID,
		UserAnswerID:   req.UserAnswerID,
		UserName:       req.UserName,
		Score:          score,
		TotalQuestions: req.TotalQuestions,
		Answers:        req.Answers,
	}

	if err := database.DB.Create(&attempt).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz attempt"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt": attempt,
		"remark":  services.RemarkForScore(attempt.Score, attempt.TotalQuestions),
	})
}

func ListQuizAttempts(c *fiber.Ctx) error {
	// The dashboard and results pages poll this endpoint for freshness.
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Set("Pragma", "no-cache")
	c.Set("Expires", "0")

	quizID, err := c.ParamsInt("quizId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if quiz.Expired() {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"message": "Quiz expired", "expired": true})
	}

	var attempts []models.QuizAttempt
	if err := database.DB.Where("quiz_id = ?", quizID).Order("completed_at").Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quiz attempts"})
	}

	entries := services.RankAttempts(attempts)

	// A respondent who just finished may not see their own row yet; merge a
	// transient entry so the board they are shown already includes them.
	if viewerName := c.Query("viewerName"); viewerName != "" {
		viewerScore := c.QueryInt("viewerScore", 0)
		viewerTotal := c.QueryInt("viewerTotal", 0)
		entries = services.MergeViewer(entries, viewerName, viewerScore, viewerTotal)
	}

	return c.JSON(fiber.Map{
		"data":       entries,
		"count":      len(entries),
		"serverTime": time.Now().UnixMilli(),
	})
}

func GetQuizAttempt(c *fiber.Ctx) error {
	c.Set("Cache-Control", "no-cache, no-store, must-revalidate")

	attemptID, err := c.ParamsInt("attemptId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt ID"})
	}

	var attempt models.QuizAttempt
	if err := database.DB.First(&attempt, "id = ?", attemptID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz attempt not found"})
	}

	return c.JSON(fiber.Map{
		"data":       attempt,
		"serverTime": time.Now().UnixMilli(),
	})
}
