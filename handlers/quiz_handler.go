package handlers

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	config "github.com/qzonme/qzonme-backend/configs"
	"github.com/qzonme/qzonme-backend/database"
	"github.com/qzonme/qzonme-backend/models"
	"github.com/qzonme/qzonme-backend/utils"
)

var validate = validator.New()

type QuizRequest struct {
	CreatorID      uint   `json:"creatorId"`
	CreatorName    string `json:"creatorName" validate:"required"`
	AccessCode     string `json:"accessCode"`
	URLSlug        string `json:"urlSlug"`
	DashboardToken string `json:"dashboardToken"`
}

func blockedCreatorNames() []string {
	raw := config.Config("BLOCKED_CREATOR_NAMES")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	blocked := blockedCreatorNames()
	if err := utils.ValidateCreatorName(req.CreatorName, blocked); err != nil {
		switch err {
		case utils.ErrBlockedCreatorName:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot use default creator name. Please enter your own name.",
				"error":   "BLOCKED_CREATOR_NAME",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Creator name cannot be empty",
				"error":   "EMPTY_CREATOR_NAME",
			})
		}
	}

	// Handles may come from the client; anything missing is generated here.
	accessCode := req.AccessCode
	if accessCode == "" {
		var err error
		accessCode, err = utils.GenerateUniqueAccessCode(database.DB)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate access code"})
		}
	}

	urlSlug := req.URLSlug
	if urlSlug == "" {
		var err error
		urlSlug, err = utils.GenerateURLSlug(req.CreatorName, blocked)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	dashboardToken := req.DashboardToken
	if dashboardToken == "" {
		dashboardToken = utils.GenerateDashboardToken()
	}

	quiz := models.Quiz{
		CreatorID:      req.CreatorID,
		CreatorName:    strings.TrimSpace(req.CreatorName),
		AccessCode:     accessCode,
		URLSlug:        urlSlug,
		DashboardToken: dashboardToken,
	}

	if err := database.DB.Create(&quiz).Error; err != nil {
		log.Printf("Error creating quiz for %q: %v", req.CreatorName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

// respondQuiz serves a quiz found on a read path, enforcing the retention
// window synchronously rather than waiting for the cleanup job to run.
func respondQuiz(c *fiber.Ctx, quiz *models.Quiz) error {
	if quiz.Expired() {
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"message": "Quiz expired",
			"expired": true,
			"detail":  "This quiz has expired. Quizzes are available for 7 days after creation.",
		})
	}
	return c.JSON(quiz)
}

func GetQuiz(c *fiber.Ctx) error {
	quizID, err := c.ParamsInt("quizId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz ID"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return respondQuiz(c, &quiz)
}

func GetQuizByAccessCode(c *fiber.Ctx) error {
	accessCode := c.Params("accessCode")

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "access_code = ?", accessCode).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return respondQuiz(c, &quiz)
}

func GetQuizBySlug(c *fiber.Ctx) error {
	urlSlug := c.Params("urlSlug")

	var quiz models.Quiz
	err := database.DB.First(&quiz, "url_slug = ?", urlSlug).Error
	if err != nil {
		// Shared links sometimes arrive with different casing.
		err = database.DB.First(&quiz, "LOWER(url_slug) = LOWER(?)", urlSlug).Error
	}
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return respondQuiz(c, &quiz)
}

func GetQuizByDashboardToken(c *fiber.Ctx) error {
	token := c.Params("token")

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "dashboard_token = ?", token).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return respondQuiz(c, &quiz)
}
