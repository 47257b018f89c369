package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightLog keeps at most one row per (user, date); a second write for the
// same day overwrites the weight.
type WeightLog struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_weight_user_date"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_weight_user_date"`
	Weight float64   // kg
	Notes  string
}
