package routes

import (
	"github.com/pratikonly/Health-Nexus/controllers"
	"github.com/pratikonly/Health-Nexus/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Meals     *controllers.MealController
	Weights   *controllers.WeightController
	Quizzes   *controllers.QuizController
	Settings  *controllers.SettingsController
	Dashboard *controllers.DashboardController
	Analyze   *controllers.AnalyzeController
}

func SetupRouter(jwtSecret string, c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password", c.Auth.ResetPassword)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		api.GET("/dashboard", c.Dashboard.GetDashboard)
		api.GET("/nutrition-data", c.Dashboard.GetNutritionData)
		api.GET("/progress-data", c.Dashboard.GetProgressData)
		api.GET("/progress", c.Dashboard.GetProgress)

		api.POST("/analyze-food", c.Analyze.AnalyzeFood)

		api.POST("/meals", c.Meals.LogMeal)
		api.GET("/meals", c.Meals.ListMeals)
		api.DELETE("/meals/:id", c.Meals.DeleteMeal)

		api.POST("/weights", c.Weights.LogWeight)
		api.GET("/weights", c.Weights.History)

		api.GET("/quizzes", c.Quizzes.ListQuizzes)
		api.GET("/quizzes/:id", c.Quizzes.QuizDetail)
		api.POST("/quizzes/:id/submit", c.Quizzes.SubmitQuiz)

		api.GET("/profile", c.Settings.GetProfile)
		api.PUT("/profile", c.Settings.UpdateSettings)
	}

	return r
}
