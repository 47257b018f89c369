package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment. Provider credentials
// are handed to service constructors from here so business logic never
// touches os.Getenv directly.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	EdamamAppID  string
	EdamamAppKey string
	NinjasAPIKey string

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
	SESEmail      string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnvOr("SERVER_PORT", "8080"),

		DBHost:     getEnvOr("DB_HOST", "localhost"),
		DBPort:     getEnvOr("DB_PORT", "5432"),
		DBUser:     getEnvOr("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOr("DB_NAME", "health_nexus"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		EdamamAppID:  os.Getenv("EDAMAM_APP_ID"),
		EdamamAppKey: os.Getenv("EDAMAM_APP_KEY"),
		NinjasAPIKey: os.Getenv("NUTRITION_API_KEY"),

		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
		SESEmail:      os.Getenv("SES_EMAIL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
