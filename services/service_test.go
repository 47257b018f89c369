package services

import (
	"testing"

	"github.com/pratikonly/Health-Nexus/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema migrated.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.MealLog{},
		&models.WeightLog{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizResult{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
