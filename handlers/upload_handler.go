package handlers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/qzonme/qzonme-backend/services"
)

const maxImageSize = 10 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadImage receives a question image and forwards it to Cloudinary,
// tagged with its owning quiz so the cleanup job can bulk-delete it later.
func UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Only image files are allowed"})
	}
	if fileHeader.Size > maxImageSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"message": "Image must be 10MB or smaller"})
	}

	// Quizzes under creation may not have an ID yet; those uploads land
	// under the zero tag and never block quiz creation.
	quizIDValue := c.FormValue("quizId")
	if quizIDValue == "" {
		quizIDValue = c.Query("quizId", "0")
	}
	quizID, err := strconv.ParseUint(quizIDValue, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid quiz ID"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to read uploaded file"})
	}
	defer file.Close()

	result, err := services.UploadQuizImage(c.UserContext(), file, uint(quizID), uuid.NewString())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload image",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"imageUrl":       result.SecureURL,
		"cacheBustedUrl": fmt.Sprintf("%s?t=%d", result.SecureURL, time.Now().UnixMilli()),
		"publicId":       result.PublicID,
		"message":        "Image uploaded successfully",
	})
}
