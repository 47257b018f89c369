package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/pratikonly/Health-Nexus/config"
	"github.com/pratikonly/Health-Nexus/controllers"
	"github.com/pratikonly/Health-Nexus/pkg/logger"
	"github.com/pratikonly/Health-Nexus/routes"
	"github.com/pratikonly/Health-Nexus/services"
	"github.com/pratikonly/Health-Nexus/utils"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("config load failed", "err", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalw("database init failed", "err", err)
	}
	if err := config.SeedQuizzes(db); err != nil {
		log.Fatalw("quiz seeding failed", "err", err)
	}

	ctx := context.Background()

	// AWS-backed pieces are optional; the app degrades to manual entry
	// and local-only behavior when they are not configured.
	var vision services.VisionProvider
	if cfg.AWSRegion != "" {
		rek, err := services.NewRekognitionService(ctx, cfg.AWSRegion)
		if err != nil {
			log.Warnw("rekognition unavailable", "err", err)
		} else {
			vision = rek
		}
	}

	var imageStore *utils.S3ImageStore
	if cfg.AWSRegion != "" && cfg.S3Bucket != "" {
		imageStore, err = utils.NewS3ImageStore(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL)
		if err != nil {
			log.Warnw("s3 store unavailable", "err", err)
			imageStore = nil
		}
	}

	var mailer services.ResetMailer
	if cfg.AWSRegion != "" && cfg.SESEmail != "" {
		m, err := utils.NewMailer(ctx, cfg.AWSRegion, cfg.SESEmail)
		if err != nil {
			log.Warnw("ses mailer unavailable", "err", err)
		} else {
			mailer = m
		}
	}

	providers := []services.NutritionProvider{
		services.NewEdamamService(cfg.EdamamAppID, cfg.EdamamAppKey),
		services.NewNinjasService(cfg.NinjasAPIKey),
	}

	var mealImages services.MealImageStore
	var avatars services.AvatarStore
	if imageStore != nil {
		mealImages = imageStore
		avatars = imageStore
	}

	nutrition := services.NewNutritionService(db)
	progress := services.NewProgressService(nutrition)
	meals := services.NewMealService(db)
	weights := services.NewWeightService(db, log)
	profiles := services.NewProfileService(db, avatars)
	quizzes := services.NewQuizService(db)
	auth := services.NewAuthService(db, cfg.JWTSecret, mailer, log)
	analyze := services.NewAnalyzeService(db, vision, providers, mealImages, log)

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	r := routes.SetupRouter(cfg.JWTSecret, routes.Controllers{
		Auth:      controllers.NewAuthController(auth),
		Meals:     controllers.NewMealController(meals),
		Weights:   controllers.NewWeightController(weights),
		Quizzes:   controllers.NewQuizController(quizzes),
		Settings:  controllers.NewSettingsController(profiles),
		Dashboard: controllers.NewDashboardController(nutrition, progress, profiles, meals, quizzes, weights, rnd),
		Analyze:   controllers.NewAnalyzeController(analyze),
	})

	log.Infow("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalw("server exited", "err", err)
	}
}
