package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/pratikonly/Health-Nexus/models"
	"github.com/pratikonly/Health-Nexus/pkg/logger"

	"gorm.io/gorm"
)

// NutritionResult is the single normalized shape every nutrition source
// maps into; provider field names never leak past their client.
type NutritionResult struct {
	FoodName    string  `json:"food_name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Fiber       float64 `json:"fiber"`
	ServingSize string  `json:"serving_size"`
	HealthTips  string  `json:"health_tips"`
	Estimated   bool    `json:"estimated"`
}

// ErrProviderUnavailable stands for any provider-level failure: missing
// credentials, network error, non-success status, unparsable payload or an
// empty result set. The pipeline advances past it, never aborts on it.
var ErrProviderUnavailable = errors.New("nutrition provider unavailable")

// Request-validation failures, reported to the caller with no side effects.
var (
	ErrNoInput           = errors.New("please upload an image or enter the food name")
	ErrManualInputNeeded = errors.New("could not detect food from image; please enter the food name manually")
)

// NutritionProvider is one entry in the ordered lookup chain.
type NutritionProvider interface {
	Name() string
	Lookup(ctx context.Context, foodName string) (*NutritionResult, error)
}

// VisionProvider turns a base64 food photo into the top recognized label.
// An empty label with nil error means nothing was recognized.
type VisionProvider interface {
	DetectFood(ctx context.Context, imageDataURI string) (string, error)
}

// MealImageStore persists the photo attached to a saved meal.
type MealImageStore interface {
	UploadMealImage(ctx context.Context, mealID uint, dataURI string) (string, error)
}

type AnalyzeService struct {
	db        *gorm.DB
	vision    VisionProvider   // nil when no recognition credentials exist
	providers []NutritionProvider
	images    MealImageStore // nil when image storage is not configured
	log       *logger.Logger
}

func NewAnalyzeService(db *gorm.DB, vision VisionProvider, providers []NutritionProvider, images MealImageStore, log *logger.Logger) *AnalyzeService {
	return &AnalyzeService{db: db, vision: vision, providers: providers, images: images, log: log}
}

type AnalyzeRequest struct {
	FoodName  string `json:"food_name"`
	ImageData string `json:"image_data"` // base64 data URI
	MealType  string `json:"meal_type"`
	SaveMeal  bool   `json:"save_meal"`
}

type AnalyzeResponse struct {
	NutritionResult
	Saved  bool `json:"saved,omitempty"`
	MealID uint `json:"meal_id,omitempty"`
}

// Analyze resolves a food name (supplied or recognized from the image),
// walks the provider chain for nutrition data and falls back to a flagged
// estimate when every provider is unavailable. With SaveMeal set it also
// persists a MealLog and, best effort, the photo.
func (s *AnalyzeService) Analyze(ctx context.Context, userID uint, req AnalyzeRequest) (*AnalyzeResponse, error) {
	foodName := strings.TrimSpace(req.FoodName)
	imageData := strings.TrimSpace(req.ImageData)

	if foodName == "" && imageData == "" {
		return nil, ErrNoInput
	}

	if foodName == "" {
		if s.vision == nil {
			return nil, ErrManualInputNeeded
		}
		label, err := s.vision.DetectFood(ctx, imageData)
		if err != nil {
			s.log.Warnw("food recognition failed", "err", err)
			return nil, ErrManualInputNeeded
		}
		if label == "" {
			return nil, ErrManualInputNeeded
		}
		foodName = label
	}

	result := s.lookup(ctx, foodName)
	resp := &AnalyzeResponse{NutritionResult: *result}

	if req.SaveMeal {
		mealType := strings.ToLower(strings.TrimSpace(req.MealType))
		if mealType == "" {
			mealType = "snack"
		}
		meal := models.MealLog{
			UserID:      userID,
			MealType:    mealType,
			FoodName:    result.FoodName,
			Calories:    result.Calories,
			Protein:     result.Protein,
			Carbs:       result.Carbs,
			Fats:        result.Fats,
			Fiber:       result.Fiber,
			ServingSize: result.ServingSize,
			Date:        dayStart(time.Now()),
		}
		if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
			return nil, err
		}

		if imageData != "" && s.images != nil {
			url, err := s.images.UploadMealImage(ctx, meal.ID, imageData)
			if err != nil {
				// The nutrition result still succeeds without its photo.
				s.log.Warnw("image save failed", "meal_id", meal.ID, "err", err)
			} else if err := s.db.WithContext(ctx).
				Model(&models.MealLog{}).
				Where("id = ?", meal.ID).
				Update("food_image", url).Error; err != nil {
				s.log.Warnw("image url update failed", "meal_id", meal.ID, "err", err)
			}
		}

		resp.Saved = true
		resp.MealID = meal.ID
	}

	return resp, nil
}

// lookup walks the providers in priority order and stops at the first
// usable result; exhaustion yields the static estimate.
func (s *AnalyzeService) lookup(ctx context.Context, foodName string) *NutritionResult {
	for _, p := range s.providers {
		result, err := p.Lookup(ctx, foodName)
		if err != nil {
			s.log.Warnw("nutrition lookup failed", "provider", p.Name(), "food", foodName, "err", err)
			continue
		}
		return result
	}
	return fallbackEstimate(foodName)
}

func fallbackEstimate(foodName string) *NutritionResult {
	name := TitleCase(foodName)
	if name == "" {
		name = "Unknown Food"
	}
	return &NutritionResult{
		FoodName:    name,
		Calories:    150,
		Protein:     5,
		Carbs:       20,
		Fats:        5,
		Fiber:       2,
		ServingSize: "1 serving",
		HealthTips:  "Nutrition data unavailable. Values shown are estimates.",
		Estimated:   true,
	}
}

// TitleCase upper-cases the first letter of each space-separated word.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
