package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pratikonly/Health-Nexus/models"
	"github.com/pratikonly/Health-Nexus/pkg/logger"
)

type stubProvider struct {
	name   string
	result *NutritionResult
	err    error
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Lookup(_ context.Context, _ string) (*NutritionResult, error) {
	return p.result, p.err
}

type stubVision struct {
	label string
	err   error
}

func (v *stubVision) DetectFood(_ context.Context, _ string) (string, error) {
	return v.label, v.err
}

type stubImageStore struct {
	url string
	err error
}

func (s *stubImageStore) UploadMealImage(_ context.Context, _ uint, _ string) (string, error) {
	return s.url, s.err
}

func TestAnalyzeNoInput(t *testing.T) {
	t.Parallel()

	svc := NewAnalyzeService(testDB(t), nil, nil, nil, logger.NewNop())

	_, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{FoodName: "  "})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("err = %v, want ErrNoInput", err)
	}
}

func TestAnalyzeImageOnlyNothingRecognized(t *testing.T) {
	t.Parallel()

	svc := NewAnalyzeService(testDB(t), &stubVision{label: ""}, nil, nil, logger.NewNop())

	_, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{ImageData: "data:image/png;base64,xx"})
	if !errors.Is(err, ErrManualInputNeeded) {
		t.Errorf("err = %v, want ErrManualInputNeeded (not a fallback estimate)", err)
	}
}

func TestAnalyzeImageOnlyNoVisionConfigured(t *testing.T) {
	t.Parallel()

	svc := NewAnalyzeService(testDB(t), nil, nil, nil, logger.NewNop())

	_, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{ImageData: "data:image/png;base64,xx"})
	if !errors.Is(err, ErrManualInputNeeded) {
		t.Errorf("err = %v, want ErrManualInputNeeded", err)
	}
}

func TestAnalyzeFallbackEstimate(t *testing.T) {
	t.Parallel()

	providers := []NutritionProvider{
		&stubProvider{name: "one", err: ErrProviderUnavailable},
		&stubProvider{name: "two", err: ErrProviderUnavailable},
	}
	svc := NewAnalyzeService(testDB(t), nil, providers, nil, logger.NewNop())

	resp, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{FoodName: "grilled cheese"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !resp.Estimated {
		t.Error("expected estimated result when every provider is unavailable")
	}
	if resp.FoodName != "Grilled Cheese" {
		t.Errorf("food name = %q, want Grilled Cheese", resp.FoodName)
	}
	if resp.Calories != 150 || resp.Protein != 5 || resp.Carbs != 20 || resp.Fats != 5 || resp.Fiber != 2 {
		t.Errorf("unexpected estimate values: %+v", resp.NutritionResult)
	}
	if resp.ServingSize != "1 serving" {
		t.Errorf("serving size = %q, want 1 serving", resp.ServingSize)
	}
}

func TestAnalyzeProviderFallthrough(t *testing.T) {
	t.Parallel()

	want := &NutritionResult{FoodName: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4}
	providers := []NutritionProvider{
		&stubProvider{name: "one", err: ErrProviderUnavailable},
		&stubProvider{name: "two", result: want},
	}
	svc := NewAnalyzeService(testDB(t), nil, providers, nil, logger.NewNop())

	resp, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{FoodName: "banana"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if resp.Estimated {
		t.Error("result from a live provider must not be flagged estimated")
	}
	if resp.FoodName != "Banana" || resp.Calories != 105 {
		t.Errorf("got %+v, want second provider's result", resp.NutritionResult)
	}
}

func TestAnalyzeRecognizedImageFeedsLookup(t *testing.T) {
	t.Parallel()

	want := &NutritionResult{FoodName: "Pizza", Calories: 285}
	svc := NewAnalyzeService(
		testDB(t),
		&stubVision{label: "pizza"},
		[]NutritionProvider{&stubProvider{name: "one", result: want}},
		nil,
		logger.NewNop(),
	)

	resp, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{ImageData: "data:image/png;base64,xx"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if resp.FoodName != "Pizza" {
		t.Errorf("food name = %q, want Pizza", resp.FoodName)
	}
}

func TestAnalyzeSaveMeal(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	want := &NutritionResult{FoodName: "Banana", Calories: 105, ServingSize: "1 medium"}
	svc := NewAnalyzeService(db, nil, []NutritionProvider{&stubProvider{name: "one", result: want}}, nil, logger.NewNop())

	resp, err := svc.Analyze(context.Background(), 7, AnalyzeRequest{FoodName: "banana", SaveMeal: true})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !resp.Saved || resp.MealID == 0 {
		t.Fatalf("saved = %v, meal id = %d; want a persisted meal", resp.Saved, resp.MealID)
	}

	var meal models.MealLog
	if err := db.First(&meal, resp.MealID).Error; err != nil {
		t.Fatalf("load meal: %v", err)
	}
	if meal.UserID != 7 || meal.FoodName != "Banana" || meal.Calories != 105 {
		t.Errorf("persisted meal = %+v, want the lookup result", meal)
	}
	if meal.MealType != "snack" {
		t.Errorf("meal type = %q, want snack default", meal.MealType)
	}
}

func TestAnalyzeSaveSurvivesImageUploadFailure(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	want := &NutritionResult{FoodName: "Pizza", Calories: 285}
	svc := NewAnalyzeService(
		db,
		&stubVision{label: "pizza"},
		[]NutritionProvider{&stubProvider{name: "one", result: want}},
		&stubImageStore{err: errors.New("bucket gone")},
		logger.NewNop(),
	)

	resp, err := svc.Analyze(context.Background(), 1, AnalyzeRequest{
		ImageData: "data:image/png;base64,xx",
		SaveMeal:  true,
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !resp.Saved {
		t.Error("meal must still save when the image upload fails")
	}

	var meal models.MealLog
	if err := db.First(&meal, resp.MealID).Error; err != nil {
		t.Fatalf("load meal: %v", err)
	}
	if meal.FoodImage != "" {
		t.Errorf("food image = %q, want empty after failed upload", meal.FoodImage)
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"grilled cheese", "Grilled Cheese"},
		{"PIZZA", "Pizza"},
		{"  fried   rice ", "Fried Rice"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
