package services

import (
	"context"
	"errors"
	"time"

	"github.com/pratikonly/Health-Nexus/models"
	"github.com/pratikonly/Health-Nexus/pkg/logger"
	"github.com/pratikonly/Health-Nexus/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
)

// ResetMailer sends the password-reset code; nil disables the mail step.
type ResetMailer interface {
	SendResetEmail(ctx context.Context, to, token string) error
}

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	mailer    ResetMailer
	log       *logger.Logger
}

func NewAuthService(db *gorm.DB, jwtSecret string, mailer ResetMailer, log *logger.Logger) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, mailer: mailer, log: log}
}

// Register creates the user and their default profile.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Email: email, Password: hashed}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID, DailyCalorieGoal: 2000, DietaryPreference: "none"}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a JWT.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Username)
}

// ForgotPassword issues a reset code when the email exists; responses are
// deliberately indistinguishable either way.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendResetEmail(ctx, user.Email, token); err != nil {
			s.log.Warnw("reset email failed", "email", user.Email, "err", err)
		}
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token <> ''", token).
		First(&user).Error; err != nil {
		return ErrInvalidResetToken
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.WithContext(ctx).Save(&user).Error
}
