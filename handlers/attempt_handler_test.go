package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newAttemptTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/quiz-attempts", CreateQuizAttempt)
	return app
}

func postAttempt(t *testing.T, app *fiber.App, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/quiz-attempts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

// An attempt without its answers array must never be persisted: the stored
// score is derived from the answers, and every stored attempt carries one
// answer per question.
func TestCreateQuizAttemptRejectsMissingAnswers(t *testing.T) {
	app := newAttemptTestApp()

	status := postAttempt(t, app, `{"quizId":1,"userName":"Ben","score":3,"totalQuestions":5}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for attempt without answers, got %d", status)
	}
}

func TestCreateQuizAttemptRejectsAnswerCountMismatch(t *testing.T) {
	app := newAttemptTestApp()

	body := `{
		"quizId": 1,
		"userName": "Ben",
		"score": 2,
		"totalQuestions": 5,
		"answers": [
			{"questionId": 1, "userAnswer": "a", "isCorrect": true},
			{"questionId": 2, "userAnswer": "b", "isCorrect": true}
		]
	}`
	status := postAttempt(t, app, body)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for answer count mismatch, got %d", status)
	}
}

func TestCreateQuizAttemptRejectsEmptyAnswers(t *testing.T) {
	app := newAttemptTestApp()

	status := postAttempt(t, app, `{"quizId":1,"userName":"Ben","score":0,"totalQuestions":0,"answers":[]}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty answers array, got %d", status)
	}
}
