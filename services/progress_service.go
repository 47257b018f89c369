package services

import (
	"context"
	"math"
	"time"
)

// DayBucket is one day's rounded totals inside a multi-day report.
type DayBucket struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Day      string  `json:"day"`  // short weekday label
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type ProgressService struct {
	nutrition *NutritionService
}

func NewProgressService(nutrition *NutritionService) *ProgressService {
	return &ProgressService{nutrition: nutrition}
}

// DailyBuckets walks n days back from end and returns one bucket per day,
// oldest first, ending at end.
func (s *ProgressService) DailyBuckets(ctx context.Context, userID uint, end time.Time, n int) ([]DayBucket, error) {
	buckets := make([]DayBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := dayStart(end).AddDate(0, 0, -i)
		totals, err := s.nutrition.TotalsForDate(ctx, userID, d)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, DayBucket{
			Date:     d.Format("2006-01-02"),
			Day:      d.Format("Mon"),
			Calories: totals.Calories,
			Protein:  totals.Protein,
			Carbs:    totals.Carbs,
			Fats:     totals.Fats,
		})
	}
	return buckets, nil
}

// CaloriePercentage reports consumed calories against the daily goal,
// capped at 100 so progress bars stay bounded. A missing goal yields 0.
func CaloriePercentage(consumed float64, goal int) int {
	if goal <= 0 {
		return 0
	}
	pct := int(math.Round(consumed / float64(goal) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
