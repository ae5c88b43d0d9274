package models

import "time"

type QuizAttempt struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	QuizID         uint               `gorm:"not null;index" json:"quizId"`
	UserAnswerID   uint               `gorm:"not null" json:"userAnswerId"`
	UserName       string             `gorm:"size:255;not null" json:"userName"`
	Score          int                `gorm:"not null" json:"score"`
	TotalQuestions int                `gorm:"not null" json:"totalQuestions"`
	Answers        QuestionAnswerList `gorm:"type:jsonb;not null" json:"answers"`
	CompletedAt    time.Time          `gorm:"autoCreateTime" json:"completedAt"`
}
