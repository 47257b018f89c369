package services

import (
	"context"
	"time"

	"github.com/pratikonly/Health-Nexus/models"
	"github.com/pratikonly/Health-Nexus/pkg/logger"

	"gorm.io/gorm"
)

type WeightService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWeightService(db *gorm.DB, log *logger.Logger) *WeightService {
	return &WeightService{db: db, log: log}
}

// LogWeight upserts by (user, date @ local midnight): a second write for the
// same day overwrites the earlier weight instead of adding a row. The
// profile's current weight is kept in sync; a failed sync is logged, not
// surfaced.
func (s *WeightService) LogWeight(ctx context.Context, userID uint, weight float64, date time.Time, notes string) (*models.WeightLog, error) {
	start := dayStart(date)

	entry := models.WeightLog{
		UserID: userID,
		Date:   start,
		Weight: weight,
		Notes:  notes,
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		Assign(models.WeightLog{Weight: weight, Notes: notes}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("weight", weight).Error; err != nil {
		s.log.Warnw("profile weight sync failed", "user_id", userID, "err", err)
	}

	return &entry, nil
}

// History returns the most recent entries, newest first, capped at limit.
func (s *WeightService) History(ctx context.Context, userID uint, limit int) ([]models.WeightLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var logs []models.WeightLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
