package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is one-to-one with a user. BMI and age are derived on read,
// never stored.
type Profile struct {
	gorm.Model
	UserID            uint   `gorm:"uniqueIndex;not null"`
	Gender            string // "male"|"female"|"other"
	AvatarEmoji       string
	AvatarURL         string
	DateOfBirth       *time.Time
	Height            *float64 // cm
	Weight            *float64 // kg
	TargetWeight      *float64 // kg
	DailyCalorieGoal  int    `gorm:"default:2000"`
	DietaryPreference string `gorm:"default:none"` // none|vegetarian|vegan|keto|paleo
}
