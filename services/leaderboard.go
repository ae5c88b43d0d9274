package services

import (
	"sort"
	"strings"
	"time"

	"github.com/qzonme/qzonme-backend/models"
)

// LeaderboardEntry is one ranked row of a quiz's results.
type LeaderboardEntry struct {
	AttemptID      uint      `json:"attemptId,omitempty"`
	UserName       string    `json:"userName"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     string    `json:"percentage"`
	CompletedAt    time.Time `json:"completedAt"`
	IsViewer       bool      `json:"isViewer,omitempty"`
}

// RankAttempts orders a quiz's attempts by percentage score, highest first.
// Scores are clamped to the question count before the percentage is taken,
// and a zero-question attempt ranks as 0%. Ties keep their input order.
func RankAttempts(attempts []models.QuizAttempt) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(attempts))
	for _, attempt := range attempts {
		score := ClampScore(attempt.Score, attempt.TotalQuestions)
		entries = append(entries, LeaderboardEntry{
			AttemptID:      attempt.ID,
			UserName:       attempt.UserName,
			Score:          score,
			TotalQuestions: attempt.TotalQuestions,
			Percentage:     FormatPercentage(score, attempt.TotalQuestions),
			CompletedAt:    attempt.CompletedAt,
		})
	}
	sortEntries(entries)
	return entries
}

// MergeViewer inserts a transient entry for the viewer's own in-progress
// result unless their name already appears (case-insensitively) among the
// persisted attempts. The merged entry is never written back to storage, so
// the merge is safe to recompute on every fetch.
func MergeViewer(entries []LeaderboardEntry, viewerName string, viewerScore, viewerTotal int) []LeaderboardEntry {
	viewerName = strings.TrimSpace(viewerName)
	if viewerName == "" {
		return entries
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.UserName, viewerName) {
			return entries
		}
	}

	score := ClampScore(viewerScore, viewerTotal)
	merged := append(entries, LeaderboardEntry{
		UserName:       viewerName,
		Score:          score,
		TotalQuestions: viewerTotal,
		Percentage:     FormatPercentage(score, viewerTotal),
		CompletedAt:    time.Now(),
		IsViewer:       true,
	})
	sortEntries(merged)
	return merged
}

func sortEntries(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return percentageOf(entries[i]) > percentageOf(entries[j])
	})
}

func percentageOf(entry LeaderboardEntry) float64 {
	if entry.TotalQuestions <= 0 {
		return 0
	}
	return float64(ClampScore(entry.Score, entry.TotalQuestions)) / float64(entry.TotalQuestions)
}
