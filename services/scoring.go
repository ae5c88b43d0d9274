package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/qzonme/qzonme-backend/models"
)

// VerifyAnswer decides whether a submitted answer is correct for the given
// correct-answer set. Comparison is case-insensitive after trimming
// surrounding whitespace. A single submission is correct when it matches any
// correct answer; an array submission is correct only when every submitted
// item matches one. There is no partial credit.
func VerifyAnswer(correctAnswers []string, answer models.AnswerValue) bool {
	if answer.Multi {
		if len(answer.Values) == 0 {
			return false
		}
		for _, submitted := range answer.Values {
			if !matchesAny(correctAnswers, submitted) {
				return false
			}
		}
		return true
	}

	if len(answer.Values) == 0 {
		return false
	}
	return matchesAny(correctAnswers, answer.Values[0])
}

func matchesAny(correctAnswers []string, submitted string) bool {
	normalized := normalizeAnswer(submitted)
	for _, correct := range correctAnswers {
		if normalizeAnswer(correct) == normalized {
			return true
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CalculateScore counts the correct answers in a completed run.
func CalculateScore(answers []models.QuestionAnswer) (score int, totalQuestions int) {
	totalQuestions = len(answers)
	for _, answer := range answers {
		if answer.IsCorrect {
			score++
		}
	}
	return score, totalQuestions
}

// ClampScore bounds a score to [0, total]. Stored attempts must never carry
// a score outside that range regardless of what the client accumulated.
func ClampScore(score, total int) int {
	if score < 0 {
		return 0
	}
	if score > total {
		return total
	}
	return score
}

// FormatPercentage renders score/total as a rounded percentage string.
// A total of zero formats as "0%" instead of dividing by zero.
func FormatPercentage(score, total int) string {
	return fmt.Sprintf("%d%%", Percentage(score, total))
}

// Percentage returns the rounded percentage for score/total, clamping the
// score to the total first.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	valid := ClampScore(score, total)
	return int(math.Round(float64(valid) / float64(total) * 100))
}

// RemarkForScore picks the playful result line shown with a finished attempt.
func RemarkForScore(score, total int) string {
	if total <= 0 {
		return "Perfect! You're basically my twin 🧠❤️"
	}

	switch percentage := Percentage(score, total); {
	case percentage <= 20:
		return "Oops! You don't know me at all 😅"
	case percentage <= 40:
		return "Hmm… you kinda know me 🤔"
	case percentage <= 60:
		return "Not bad! You're getting there 👀"
	case percentage <= 80:
		return "Yoo you really know me! 🔥🔥"
	default:
		return "Perfect! You're basically my twin 🧠❤️"
	}
}
