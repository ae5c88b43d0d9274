package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/qzonme/qzonme-backend/configs"
	"github.com/qzonme/qzonme-backend/database"
	"github.com/qzonme/qzonme-backend/jobs"
	"github.com/qzonme/qzonme-backend/models"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

func AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	passwordHash := config.Config("ADMIN_PASSWORD_HASH")
	if passwordHash == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Admin access is not configured"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{"token": signed})
}

// AdminListQuizzes returns every quiz, including expired ones, with an
// expiry annotation. Used by the internal dashboard only.
func AdminListQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	if err := database.DB.Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch quizzes"})
	}

	type adminQuiz struct {
		models.Quiz
		Expired bool `json:"expired"`
	}
	out := make([]adminQuiz, len(quizzes))
	for i := range quizzes {
		out[i] = adminQuiz{Quiz: quizzes[i], Expired: quizzes[i].Expired()}
	}

	return c.JSON(fiber.Map{"data": out, "count": len(out)})
}

// AdminRunCleanup triggers the retention sweep outside its cron schedule.
func AdminRunCleanup(c *fiber.Ctx) error {
	deleted, err := jobs.RunCleanup()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Cleanup finished with errors",
			"deleted": deleted,
		})
	}

	return c.JSON(fiber.Map{
		"message": "Cleanup completed",
		"deleted": deleted,
	})
}
