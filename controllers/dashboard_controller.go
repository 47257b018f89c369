package controllers

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/pratikonly/Health-Nexus/middlewares"
	"github.com/pratikonly/Health-Nexus/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Nutrition *services.NutritionService
	Progress  *services.ProgressService
	Profile   *services.ProfileService
	Meals     *services.MealService
	Quizzes   *services.QuizService
	Weights   *services.WeightService

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewDashboardController(
	nutrition *services.NutritionService,
	progress *services.ProgressService,
	profile *services.ProfileService,
	meals *services.MealService,
	quizzes *services.QuizService,
	weights *services.WeightService,
	rnd *rand.Rand,
) *DashboardController {
	return &DashboardController{
		Nutrition: nutrition,
		Progress:  progress,
		Profile:   profile,
		Meals:     meals,
		Quizzes:   quizzes,
		Weights:   weights,
		rnd:       rnd,
	}
}

func (h *DashboardController) pickQuote() services.Quote {
	h.mu.Lock()
	defer h.mu.Unlock()
	return services.PickQuote(h.rnd)
}

// GetDashboard backs the home screen: today's totals, the capped
// calorie-goal percentage, a quote and a couple of counters.
func (h *DashboardController) GetDashboard(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	profile, err := h.Profile.GetOrCreate(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.Nutrition.TotalsForDate(ctx, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	quizCount, err := h.Quizzes.CountResults(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	mealsLogged, err := h.Meals.CountMeals(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_calories":     totals.Calories,
		"today_protein":      totals.Protein,
		"today_carbs":        totals.Carbs,
		"today_fats":         totals.Fats,
		"calorie_goal":       profile.DailyCalorieGoal,
		"calorie_percentage": services.CaloriePercentage(totals.Calories, profile.DailyCalorieGoal),
		"quote":              h.pickQuote(),
		"quiz_count":         quizCount,
		"meals_logged":       mealsLogged,
	})
}

// GetNutritionData returns today's totals for the dashboard poller.
func (h *DashboardController) GetNutritionData(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	totals, err := h.Nutrition.TotalsForDate(c.Request.Context(), userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GetProgressData returns the 7-day calorie series for the chart.
func (h *DashboardController) GetProgressData(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	buckets, err := h.Progress.DailyBuckets(c.Request.Context(), userID, time.Now(), 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": buckets})
}

// GetProgress backs the progress page: weight history, the last 7 days of
// meals and recent quiz attempts.
func (h *DashboardController) GetProgress(c *gin.Context) {
	userID, ok := middlewares.UserIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	ctx := c.Request.Context()

	view, err := h.Profile.View(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	weights, err := h.Weights.History(ctx, userID, 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	last7, err := h.Progress.DailyBuckets(ctx, userID, time.Now(), 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	quizResults, err := h.Quizzes.RecentResults(ctx, userID, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":      view,
		"weight_logs":  weights,
		"last_7_days":  last7,
		"quiz_results": quizResults,
	})
}
