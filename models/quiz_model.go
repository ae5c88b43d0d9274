package models

import "time"

// RetentionDays is the number of days a quiz stays accessible after creation.
// Everything that belongs to an expired quiz (questions, attempts, hosted
// images) becomes eligible for deletion by the cleanup job.
const RetentionDays = 7

type Quiz struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatorID      uint      `gorm:"not null" json:"creatorId"`
	CreatorName    string    `gorm:"size:255;not null" json:"creatorName"`
	AccessCode     string    `gorm:"size:32;not null;unique" json:"accessCode"`
	URLSlug        string    `gorm:"size:64;not null;unique" json:"urlSlug"`
	DashboardToken string    `gorm:"size:64;not null;unique" json:"dashboardToken"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Expired reports whether the quiz is past the retention window. A quiz with
// an unreadable creation time is treated as expired rather than immortal.
func (q *Quiz) Expired() bool {
	return q.ExpiredAt(time.Now())
}

func (q *Quiz) ExpiredAt(now time.Time) bool {
	if q == nil || q.CreatedAt.IsZero() {
		return true
	}
	return now.Sub(q.CreatedAt) > RetentionDays*24*time.Hour
}
