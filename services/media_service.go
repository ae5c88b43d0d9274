package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/qzonme/qzonme-backend/configs"
)

const mediaFolder = "qzonme"

var mediaClient *cloudinary.Cloudinary

// InitMediaService connects the Cloudinary client from CLOUDINARY_URL and
// pings the API. Uploads and sweep-time image cleanup are disabled when the
// URL is not configured.
func InitMediaService() {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	if cloudinaryURL == "" {
		log.Println("⚠️ CLOUDINARY_URL not set, image uploads and image cleanup are disabled")
		mediaClient = nil
		return
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		log.Printf("🔥 Failed to initialize Cloudinary client: %v", err)
		mediaClient = nil
		return
	}

	if _, err := cld.Admin.Ping(context.Background()); err != nil {
		log.Printf("⚠️ Cloudinary ping failed: %v", err)
	}

	mediaClient = cld
	log.Println("✅ Cloudinary media service initialized")
}

func MediaClient() *cloudinary.Cloudinary {
	return mediaClient
}

// QuizImageTag is the Cloudinary tag attached to every image uploaded for a
// quiz, so the whole set can be deleted in one call when the quiz expires.
func QuizImageTag(quizID uint) string {
	return fmt.Sprintf("quiz:%d", quizID)
}

// UploadQuizImage sends an image to Cloudinary tagged with its owning quiz,
// resized to at most 800px wide with automatic quality and format.
func UploadQuizImage(ctx context.Context, file interface{}, quizID uint, publicID string) (*uploader.UploadResult, error) {
	if mediaClient == nil {
		return nil, fmt.Errorf("media service not configured")
	}

	result, err := mediaClient.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         mediaFolder,
		PublicID:       publicID,
		Tags:           api.CldAPIArray{QuizImageTag(quizID)},
		ResourceType:   "image",
		Transformation: "c_limit,w_800/q_auto:good/f_auto",
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteQuizImages removes every hosted image tagged with the given quiz.
func DeleteQuizImages(ctx context.Context, quizID uint) error {
	if mediaClient == nil {
		return nil
	}

	_, err := mediaClient.Admin.DeleteAssetsByTag(ctx, admin.DeleteAssetsByTagParams{
		Tag: QuizImageTag(quizID),
	})
	return err
}

// CleanupQuizImages deletes hosted images for a batch of expired quizzes.
// Failures are logged per quiz and never propagated: image cleanup is
// best-effort and must not block the data-retention sweep.
func CleanupQuizImages(ctx context.Context, quizIDs []uint) {
	for _, quizID := range quizIDs {
		if err := DeleteQuizImages(ctx, quizID); err != nil {
			log.Printf("Error deleting images for quiz %d: %v", quizID, err)
		}
		// Pace the admin API calls to stay under Cloudinary rate limits.
		time.Sleep(100 * time.Millisecond)
	}
}
