package services

import (
	"context"
	"testing"
	"time"

	"github.com/pratikonly/Health-Nexus/models"
)

func TestTotalsForDateEmpty(t *testing.T) {
	t.Parallel()

	svc := NewNutritionService(testDB(t))

	totals, err := svc.TotalsForDate(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("TotalsForDate: %v", err)
	}
	if totals != (Totals{}) {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}

func TestTotalsForDateSumsAndRounds(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	svc := NewNutritionService(db)

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	meals := []models.MealLog{
		{UserID: 1, MealType: "breakfast", FoodName: "Oatmeal", Calories: 150.25, Protein: 5.05, Carbs: 27.1, Fats: 2.6, Date: day},
		{UserID: 1, MealType: "lunch", FoodName: "Chicken Salad", Calories: 420.11, Protein: 35.02, Carbs: 12.3, Fats: 18.4, Date: day},
		// Other users and other days must not leak in.
		{UserID: 2, MealType: "lunch", FoodName: "Burger", Calories: 800, Date: day},
		{UserID: 1, MealType: "dinner", FoodName: "Pasta", Calories: 600, Date: day.AddDate(0, 0, -1)},
	}
	if err := db.Create(&meals).Error; err != nil {
		t.Fatalf("seed meals: %v", err)
	}

	totals, err := svc.TotalsForDate(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("TotalsForDate: %v", err)
	}
	if totals.Calories != 570.4 {
		t.Errorf("calories = %v, want 570.4", totals.Calories)
	}
	if totals.Protein != 40.1 {
		t.Errorf("protein = %v, want 40.1", totals.Protein)
	}
	if totals.Carbs != 39.4 {
		t.Errorf("carbs = %v, want 39.4", totals.Carbs)
	}
	if totals.Fats != 21.0 {
		t.Errorf("fats = %v, want 21.0", totals.Fats)
	}
}

func TestTotalsForRangeInclusive(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	svc := NewNutritionService(db)

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 0, 6)
	meals := []models.MealLog{
		{UserID: 1, MealType: "lunch", FoodName: "A", Calories: 100, Date: from},
		{UserID: 1, MealType: "lunch", FoodName: "B", Calories: 200, Date: to},
		{UserID: 1, MealType: "lunch", FoodName: "C", Calories: 400, Date: to.AddDate(0, 0, 1)},
	}
	if err := db.Create(&meals).Error; err != nil {
		t.Fatalf("seed meals: %v", err)
	}

	totals, err := svc.TotalsForRange(context.Background(), 1, from, to)
	if err != nil {
		t.Fatalf("TotalsForRange: %v", err)
	}
	if totals.Calories != 300 {
		t.Errorf("calories = %v, want 300 (both endpoints, nothing after)", totals.Calories)
	}
}
