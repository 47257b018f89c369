package services

import (
	"context"
	"math"
	"time"

	"github.com/pratikonly/Health-Nexus/models"

	"gorm.io/gorm"
)

// Totals is the per-day macro/calorie sum for one user.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// NutritionService sums logged meals. Reads only; no matching rows means
// all-zero totals, not an error.
type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// TotalsForDate sums calories and macros over the user's meals on one day,
// each rounded to one decimal.
func (s *NutritionService) TotalsForDate(ctx context.Context, userID uint, date time.Time) (Totals, error) {
	return s.TotalsForRange(ctx, userID, date, date)
}

// TotalsForRange sums over [from, to] inclusive, by log date.
func (s *NutritionService) TotalsForRange(ctx context.Context, userID uint, from, to time.Time) (Totals, error) {
	var r Totals
	err := s.db.WithContext(ctx).
		Model(&models.MealLog{}).
		Select(`
			COALESCE(SUM(calories), 0) as calories,
			COALESCE(SUM(protein), 0) as protein,
			COALESCE(SUM(carbs), 0) as carbs,
			COALESCE(SUM(fats), 0) as fats
		`).
		Where("user_id = ? AND date >= ? AND date < ?",
			userID, dayStart(from), dayStart(to).AddDate(0, 0, 1)).
		Scan(&r).Error
	if err != nil {
		return Totals{}, err
	}

	r.Calories = round1(r.Calories)
	r.Protein = round1(r.Protein)
	r.Carbs = round1(r.Carbs)
	r.Fats = round1(r.Fats)
	return r, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
