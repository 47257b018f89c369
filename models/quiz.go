package models

import (
	"gorm.io/gorm"
)

type Quiz struct {
	gorm.Model
	Title       string `gorm:"uniqueIndex;not null"`
	Description string
	Category    string `gorm:"type:varchar(50)"` // nutrition|fitness|wellness|mental_health
	Questions   []QuizQuestion
}

type QuizQuestion struct {
	gorm.Model
	QuizID        uint   `gorm:"index;not null"`
	QuestionText  string `gorm:"not null"`
	OptionA       string `gorm:"not null"`
	OptionB       string `gorm:"not null"`
	OptionC       string `gorm:"not null"`
	OptionD       string `gorm:"not null"`
	CorrectAnswer string `gorm:"type:varchar(1);not null"` // a|b|c|d
	Explanation   string
}

// One row per submission attempt; retakes append, never overwrite.
type QuizResult struct {
	gorm.Model
	UserID         uint `gorm:"index;not null"`
	QuizID         uint `gorm:"index;not null"`
	Score          int
	TotalQuestions int
	Percentage     float64
}
