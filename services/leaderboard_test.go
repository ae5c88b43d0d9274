package services

import (
	"testing"

	"github.com/qzonme/qzonme-backend/models"
)

func TestRankAttemptsOrdersByPercentageDescending(t *testing.T) {
	attempts := []models.QuizAttempt{
		{ID: 1, UserName: "Ann", Score: 4, TotalQuestions: 5},   // 80%
		{ID: 2, UserName: "Ben", Score: 5, TotalQuestions: 5},   // 100%
		{ID: 3, UserName: "Cleo", Score: 3, TotalQuestions: 10}, // 30%
	}

	entries := RankAttempts(attempts)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserName != "Ben" || entries[1].UserName != "Ann" || entries[2].UserName != "Cleo" {
		t.Fatalf("unexpected order: %s, %s, %s", entries[0].UserName, entries[1].UserName, entries[2].UserName)
	}
	if entries[0].Percentage != "100%" || entries[1].Percentage != "80%" {
		t.Fatalf("unexpected percentages: %s, %s", entries[0].Percentage, entries[1].Percentage)
	}
}

func TestRankAttemptsZeroQuestions(t *testing.T) {
	entries := RankAttempts([]models.QuizAttempt{
		{ID: 1, UserName: "Ann", Score: 4, TotalQuestions: 0},
	})

	if entries[0].Percentage != "0%" {
		t.Fatalf("expected 0%% for zero-question attempt, got %s", entries[0].Percentage)
	}
}

func TestRankAttemptsClampsCorruptScore(t *testing.T) {
	entries := RankAttempts([]models.QuizAttempt{
		{ID: 1, UserName: "Ann", Score: 9, TotalQuestions: 5},
	})

	if entries[0].Score != 5 {
		t.Fatalf("expected score clamped to 5, got %d", entries[0].Score)
	}
	if entries[0].Percentage != "100%" {
		t.Fatalf("expected 100%%, got %s", entries[0].Percentage)
	}
}

func TestMergeViewerInsertsTransientEntry(t *testing.T) {
	entries := RankAttempts([]models.QuizAttempt{
		{ID: 1, UserName: "Ann", Score: 2, TotalQuestions: 5},
	})

	merged := MergeViewer(entries, "Ben", 4, 5)
	if len(merged) != 2 {
		t.Fatalf("expected 2 entries after merge, got %d", len(merged))
	}
	if merged[0].UserName != "Ben" || !merged[0].IsViewer {
		t.Fatalf("expected Ben's transient entry ranked first, got %+v", merged[0])
	}
}

func TestMergeViewerIsIdempotentForExistingName(t *testing.T) {
	entries := RankAttempts([]models.QuizAttempt{
		{ID: 1, UserName: "Ann", Score: 2, TotalQuestions: 5},
	})

	merged := MergeViewer(entries, "ANN", 5, 5)
	if len(merged) != 1 {
		t.Fatalf("expected no duplicate for case-insensitive name match, got %d entries", len(merged))
	}
}

func TestMergeViewerIgnoresBlankName(t *testing.T) {
	entries := RankAttempts(nil)

	if merged := MergeViewer(entries, "   ", 3, 5); len(merged) != 0 {
		t.Fatalf("expected blank viewer name to be ignored, got %d entries", len(merged))
	}
}

func TestMergeViewerClampsScore(t *testing.T) {
	merged := MergeViewer(nil, "Ben", 9, 5)

	if merged[0].Score != 5 || merged[0].Percentage != "100%" {
		t.Fatalf("expected clamped viewer entry, got %+v", merged[0])
	}
}
