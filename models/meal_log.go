package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged food entry with its nutrition snapshot.
type MealLog struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	MealType    string `gorm:"type:varchar(20);not null"` // breakfast|lunch|dinner|snack
	FoodName    string `gorm:"not null"`
	FoodImage   string // storage URL, empty when no image was attached
	Calories    float64
	Protein     float64 // g
	Carbs       float64 // g
	Fats        float64 // g
	Fiber       float64 // g
	ServingSize string  `gorm:"default:1 serving"`
	Notes       string
	Date        time.Time `gorm:"index;not null"` // log day, truncated to midnight
}
