package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pratikonly/Health-Nexus/models"

	"gorm.io/gorm"
)

var ErrMealNotFound = errors.New("meal not found")

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	MealType    string  `json:"meal_type"`
	FoodName    string  `json:"food_name" binding:"required"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Fiber       float64 `json:"fiber"`
	ServingSize string  `json:"serving_size"`
	Notes       string  `json:"notes"`
}

// LogMeal records a manually entered meal for today.
func (s *MealService) LogMeal(ctx context.Context, userID uint, in MealInput) (*models.MealLog, error) {
	mealType := strings.ToLower(strings.TrimSpace(in.MealType))
	if mealType == "" {
		mealType = "snack"
	}
	serving := in.ServingSize
	if serving == "" {
		serving = "1 serving"
	}

	meal := &models.MealLog{
		UserID:      userID,
		MealType:    mealType,
		FoodName:    in.FoodName,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		Fiber:       in.Fiber,
		ServingSize: serving,
		Notes:       in.Notes,
		Date:        dayStart(time.Now()),
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uint) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListMealsForDate(ctx context.Context, userID uint, date time.Time) ([]models.MealLog, error) {
	start := dayStart(date)
	var meals []models.MealLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, start.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes one meal, scoped to the owning user.
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (s *MealService) CountMeals(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.MealLog{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}
