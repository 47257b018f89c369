package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pratikonly/Health-Nexus/models"
	"github.com/pratikonly/Health-Nexus/utils"

	"gorm.io/gorm"
)

// AvatarStore is the slice of image storage the profile service needs.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, dataURI string) (string, error)
}

type ProfileService struct {
	db     *gorm.DB
	images AvatarStore // may be nil when image storage is not configured
}

func NewProfileService(db *gorm.DB, images AvatarStore) *ProfileService {
	return &ProfileService{db: db, images: images}
}

// ProfileView is the stored profile plus its derived metrics. BMI and age
// are recomputed on every read and never persisted.
type ProfileView struct {
	Gender            string   `json:"gender"`
	AvatarEmoji       string   `json:"avatar_emoji"`
	AvatarURL         string   `json:"avatar_url"`
	DateOfBirth       string   `json:"date_of_birth,omitempty"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	TargetWeight      *float64 `json:"target_weight"`
	DailyCalorieGoal  int      `json:"daily_calorie_goal"`
	DietaryPreference string   `json:"dietary_preference"`
	BMI               *float64 `json:"bmi"`
	BMICategory       string   `json:"bmi_category,omitempty"`
	Age               *int     `json:"age"`
}

// GetOrCreate loads the user's profile, creating the default one on first
// access the way the original views did.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{UserID: userID, DailyCalorieGoal: 2000, DietaryPreference: "none"}
		err = s.db.WithContext(ctx).Create(&profile).Error
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) View(ctx context.Context, userID uint) (*ProfileView, error) {
	profile, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildView(profile, time.Now()), nil
}

func buildView(p *models.Profile, now time.Time) *ProfileView {
	view := &ProfileView{
		Gender:            p.Gender,
		AvatarEmoji:       p.AvatarEmoji,
		AvatarURL:         p.AvatarURL,
		Height:            p.Height,
		Weight:            p.Weight,
		TargetWeight:      p.TargetWeight,
		DailyCalorieGoal:  p.DailyCalorieGoal,
		DietaryPreference: p.DietaryPreference,
	}
	if p.DateOfBirth != nil {
		view.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
		age := utils.CalculateAgeAt(*p.DateOfBirth, now)
		view.Age = &age
	}
	if p.Height != nil && p.Weight != nil {
		if bmi, err := utils.CalculateBMI(*p.Height, *p.Weight); err == nil {
			view.BMI = &bmi
			view.BMICategory = utils.BMICategory(bmi)
		}
	}
	return view
}

type SettingsInput struct {
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Email             string   `json:"email"`
	Gender            string   `json:"gender"`
	AvatarEmoji       string   `json:"avatar_emoji"`
	Avatar            string   `json:"avatar"` // base64 data URI, optional
	DateOfBirth       string   `json:"date_of_birth"` // YYYY-MM-DD
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	TargetWeight      *float64 `json:"target_weight"`
	DailyCalorieGoal  *int     `json:"daily_calorie_goal"`
	DietaryPreference string   `json:"dietary_preference"`
}

// UpdateSettings applies the settings form: user name/email plus the health
// metrics on the profile.
func (s *ProfileService) UpdateSettings(ctx context.Context, userID uint, in SettingsInput) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return err
	}
	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}

	profile, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	if in.Gender != "" {
		profile.Gender = in.Gender
	}
	if in.AvatarEmoji != "" {
		profile.AvatarEmoji = in.AvatarEmoji
	}
	if in.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			return fmt.Errorf("invalid date_of_birth: %w", err)
		}
		profile.DateOfBirth = &dob
	}
	profile.Height = in.Height
	profile.Weight = in.Weight
	profile.TargetWeight = in.TargetWeight
	if in.DailyCalorieGoal != nil {
		profile.DailyCalorieGoal = *in.DailyCalorieGoal
	} else {
		profile.DailyCalorieGoal = 2000
	}
	if in.DietaryPreference != "" {
		profile.DietaryPreference = in.DietaryPreference
	} else {
		profile.DietaryPreference = "none"
	}

	if in.Avatar != "" && s.images != nil {
		url, err := s.images.UploadAvatar(ctx, in.Avatar)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
		profile.AvatarURL = url
	}

	return s.db.WithContext(ctx).Save(profile).Error
}
