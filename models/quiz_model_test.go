package models

import (
	"testing"
	"time"
)

func TestQuizExpiry(t *testing.T) {
	now := time.Now()

	fresh := &Quiz{CreatedAt: now.Add(-24 * time.Hour)}
	if fresh.ExpiredAt(now) {
		t.Fatal("quiz created 1 day ago should be active")
	}

	nearCutoff := &Quiz{CreatedAt: now.Add(-6 * 24 * time.Hour)}
	if nearCutoff.ExpiredAt(now) {
		t.Fatal("quiz created 6 days ago should be active")
	}

	expired := &Quiz{CreatedAt: now.Add(-8 * 24 * time.Hour)}
	if !expired.ExpiredAt(now) {
		t.Fatal("quiz created 8 days ago should be expired")
	}
}

func TestQuizExpiryFailsClosed(t *testing.T) {
	var nilQuiz *Quiz
	if !nilQuiz.Expired() {
		t.Fatal("nil quiz should count as expired")
	}

	zeroCreated := &Quiz{}
	if !zeroCreated.Expired() {
		t.Fatal("quiz with unreadable creation time should count as expired")
	}
}
