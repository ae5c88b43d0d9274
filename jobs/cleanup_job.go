package jobs

import (
	"context"
	"log"
	"time"

	"github.com/qzonme/qzonme-backend/database"
	"github.com/qzonme/qzonme-backend/models"
	"github.com/qzonme/qzonme-backend/services"
	"gorm.io/gorm"
)

// RetentionCutoff returns the moment before which quizzes count as expired.
func RetentionCutoff(now time.Time) time.Time {
	return now.Add(-models.RetentionDays * 24 * time.Hour)
}

// SweepStore is the storage surface the retention sweep runs against.
// Deletes issued inside the function passed to Transaction must apply
// atomically per quiz.
type SweepStore interface {
	ExpiredQuizzes(cutoff time.Time) ([]models.Quiz, error)
	DeleteAttempts(quizID uint) error
	DeleteQuestions(quizID uint) error
	DeleteQuiz(quizID uint) error
	Transaction(fn func(tx SweepStore) error) error
}

type gormSweepStore struct {
	db *gorm.DB
}

func (s gormSweepStore) ExpiredQuizzes(cutoff time.Time) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Where("created_at < ?", cutoff).Find(&quizzes).Error
	return quizzes, err
}

func (s gormSweepStore) DeleteAttempts(quizID uint) error {
	return s.db.Where("quiz_id = ?", quizID).Delete(&models.QuizAttempt{}).Error
}

func (s gormSweepStore) DeleteQuestions(quizID uint) error {
	return s.db.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error
}

func (s gormSweepStore) DeleteQuiz(quizID uint) error {
	return s.db.Delete(&models.Quiz{}, "id = ?", quizID).Error
}

func (s gormSweepStore) Transaction(fn func(tx SweepStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(gormSweepStore{db: tx})
	})
}

// CleanupExpiredQuizzes is the entry point the scheduler calls.
func CleanupExpiredQuizzes() {
	if _, err := RunCleanup(); err != nil {
		log.Printf("Error cleaning up expired quizzes: %v", err)
	}
}

// RunCleanup deletes quizzes past the retention window together with their
// questions, attempts, and hosted images.
func RunCleanup() (int, error) {
	return sweep(gormSweepStore{db: database.DB}, services.CleanupQuizImages, time.Now())
}

// sweep carries out one cleanup run. Image deletion is best-effort; the
// database deletes run children-first inside one transaction per quiz so a
// crash mid-sweep cannot leave orphaned rows behind a deleted quiz.
func sweep(store SweepStore, cleanImages func(context.Context, []uint), now time.Time) (int, error) {
	log.Println("Running job: CleanupExpiredQuizzes...")

	expiredQuizzes, err := store.ExpiredQuizzes(RetentionCutoff(now))
	if err != nil {
		return 0, err
	}

	if len(expiredQuizzes) == 0 {
		log.Println("No expired quizzes found to clean up.")
		return 0, nil
	}

	quizIDs := make([]uint, len(expiredQuizzes))
	for i, quiz := range expiredQuizzes {
		quizIDs[i] = quiz.ID
	}
	log.Printf("Found %d expired quiz(zes) to clean up", len(quizIDs))

	cleanImages(context.Background(), quizIDs)

	deleted := 0
	var lastErr error
	for _, quizID := range quizIDs {
		err := store.Transaction(func(tx SweepStore) error {
			if err := tx.DeleteAttempts(quizID); err != nil {
				return err
			}
			if err := tx.DeleteQuestions(quizID); err != nil {
				return err
			}
			return tx.DeleteQuiz(quizID)
		})
		if err != nil {
			log.Printf("Error deleting expired quiz %d: %v", quizID, err)
			lastErr = err
			continue
		}
		deleted++
	}

	log.Printf("Cleaned up %d of %d expired quiz(zes)", deleted, len(quizIDs))
	return deleted, lastErr
}
