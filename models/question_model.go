package models

type Question struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	QuizID         uint       `gorm:"not null;index" json:"quizId"`
	Text           string     `gorm:"type:text;not null" json:"text"`
	Type           string     `gorm:"size:50;not null;default:'multiple-choice'" json:"type"`
	Options        StringList `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswers StringList `gorm:"type:jsonb;not null" json:"correctAnswers"`
	Hint           *string    `gorm:"type:text" json:"hint"`
	Order          int        `gorm:"column:question_order;not null" json:"order"`
	ImageURL       *string    `gorm:"size:512" json:"imageUrl"`
}
