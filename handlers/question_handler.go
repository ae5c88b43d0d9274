package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/qzonme/qzonme-backend/database"
	"github.com/qzonme/qzonme-backend/models"
	"github.com/qzonme/qzonme-backend/services"
)

type QuestionRequest struct {
	QuizID         uint     `json:"quizId" validate:"required"`
	Text           string   `json:"text" validate:"required"`
	Type           string   `json:"type"`
	Options        []string `json:"options" validate:"required,min=2"`
	CorrectAnswers []string `json:"correctAnswers" validate:"required,min=1"`
	Hint           *string  `json:"hint"`
	Order          int      `json:"order"`
	ImageURL       *string  `json:"imageUrl"`
}

func CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, correct := range req.CorrectAnswers {
		if !containsFold(req.Options, correct) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Every correct answer must be one of the question's options",
			})
		}
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", req.QuizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	if quiz.Expired() {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"message": "Quiz expired", "expired": true})
	}

	questionType := req.Type
	if questionType == "" {
		questionType = "multiple-choice"
	}

	question := models.Question{
		QuizID:         req.QuizID,
		Text:           req.Text,
		Type:           questionType,
		Options:        req.Options,
		CorrectAnswers: req.CorrectAnswers,
		Hint:           req.Hint,
		Order:          req.Order,
		ImageURL:       req.ImageURL,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func containsFold(options []string, answer string) bool {
	for _, option := range options {
		if strings.EqualFold(strings.TrimSpace(option), strings.TrimSpace(answer)) {
			return true
		}
	}
	return false
}

func ListQuizQuestions(c *fiber.Ctx) error {
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

	var questions []models.Question
	if err := database.DB.Where("quiz_id = ?", quizID).Order("question_order").Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch questions"})
	}

	return c.JSON(questions)
}

type VerifyAnswerRequest struct {
	Answer models.AnswerValue `json:"answer"`
}

func VerifyAnswer(c *fiber.Ctx) error {
	questionID, err := c.ParamsInt("questionId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question ID"})
	}

	var req VerifyAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid answer data"})
	}
	if len(req.Answer.Values) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Answer is required"})
	}

	var question models.Question
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
	}

	isCorrect := services.VerifyAnswer(question.CorrectAnswers, req.Answer)

	return c.JSON(fiber.Map{
		"isCorrect": isCorrect,
		"debug": fiber.Map{
			"questionText":   question.Text,
			"correctAnswers": question.CorrectAnswers,
			"userAnswer":     req.Answer,
		},
	})
}
