package services

import (
	"context"
	"errors"
	"testing"
)

func TestLogMealDefaults(t *testing.T) {
	t.Parallel()

	svc := NewMealService(testDB(t))

	meal, err := svc.LogMeal(context.Background(), 1, MealInput{FoodName: "Toast", Calories: 120})
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if meal.MealType != "snack" {
		t.Errorf("meal type = %q, want snack default", meal.MealType)
	}
	if meal.ServingSize != "1 serving" {
		t.Errorf("serving size = %q, want 1 serving default", meal.ServingSize)
	}
	if meal.Date.Hour() != 0 || meal.Date.Minute() != 0 {
		t.Errorf("date = %v, want midnight-truncated", meal.Date)
	}
}

func TestLogMealNormalizesType(t *testing.T) {
	t.Parallel()

	svc := NewMealService(testDB(t))

	meal, err := svc.LogMeal(context.Background(), 1, MealInput{FoodName: "Eggs", MealType: " Breakfast "})
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if meal.MealType != "breakfast" {
		t.Errorf("meal type = %q, want breakfast", meal.MealType)
	}
}

func TestDeleteMealScopedToOwner(t *testing.T) {
	t.Parallel()

	svc := NewMealService(testDB(t))
	ctx := context.Background()

	meal, err := svc.LogMeal(ctx, 1, MealInput{FoodName: "Toast"})
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	// Another user cannot delete it.
	if err := svc.DeleteMeal(ctx, 2, meal.ID); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("foreign delete err = %v, want ErrMealNotFound", err)
	}

	if err := svc.DeleteMeal(ctx, 1, meal.ID); err != nil {
		t.Fatalf("DeleteMeal: %v", err)
	}
	if err := svc.DeleteMeal(ctx, 1, meal.ID); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("second delete err = %v, want ErrMealNotFound", err)
	}
}

func TestCountMeals(t *testing.T) {
	t.Parallel()

	svc := NewMealService(testDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.LogMeal(ctx, 1, MealInput{FoodName: "Snack"}); err != nil {
			t.Fatalf("LogMeal: %v", err)
		}
	}
	if _, err := svc.LogMeal(ctx, 2, MealInput{FoodName: "Other"}); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	n, err := svc.CountMeals(ctx, 1)
	if err != nil {
		t.Fatalf("CountMeals: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
}
