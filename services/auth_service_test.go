package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pratikonly/Health-Nexus/models"
	"github.com/pratikonly/Health-Nexus/pkg/logger"
)

type recordingMailer struct {
	to    string
	token string
}

func (m *recordingMailer) SendResetEmail(_ context.Context, to, token string) error {
	m.to = to
	m.token = token
	return nil
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	svc := NewAuthService(db, "secret", nil, logger.NewNop())

	user, err := svc.Register(context.Background(), "alex", "alex@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plain text")
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("profile not created: %v", err)
	}
	if profile.DailyCalorieGoal != 2000 {
		t.Errorf("default calorie goal = %d, want 2000", profile.DailyCalorieGoal)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testDB(t), "secret", nil, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alex", "alex@example.com", "pw123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(ctx, "alex", "other@example.com", "pw123456")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("err = %v, want ErrUsernameTaken", err)
	}

	_, err = svc.Register(ctx, "other", "alex@example.com", "pw123456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testDB(t), "secret", nil, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alex", "alex@example.com", "pw123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := svc.Login(ctx, "alex", "pw123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}

	if _, err := svc.Login(ctx, "alex", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody", "pw123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	mailer := &recordingMailer{}
	svc := NewAuthService(db, "secret", mailer, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alex", "alex@example.com", "pw123456"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "alex@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if mailer.to != "alex@example.com" || len(mailer.token) != 6 {
		t.Fatalf("mailer got to=%q token=%q", mailer.to, mailer.token)
	}

	if err := svc.ResetPassword(ctx, mailer.token, "newpass99"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if _, err := svc.Login(ctx, "alex", "newpass99"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, "alex", "pw123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password still works after reset")
	}

	// The token is single use.
	if err := svc.ResetPassword(ctx, mailer.token, "again1234"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("reused token err = %v, want ErrInvalidResetToken", err)
	}
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testDB(t), "secret", nil, logger.NewNop())

	if err := svc.ForgotPassword(context.Background(), "nobody@example.com"); err != nil {
		t.Errorf("ForgotPassword for unknown email must not error, got %v", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	t.Parallel()

	db := testDB(t)
	svc := NewAuthService(db, "secret", nil, logger.NewNop())
	ctx := context.Background()

	user, err := svc.Register(ctx, "alex", "alex@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user.ResetToken = "ABC123"
	user.ResetTokenExp = time.Now().Add(-time.Minute)
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("seed expired token: %v", err)
	}

	if err := svc.ResetPassword(ctx, "ABC123", "newpass99"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("expired token err = %v, want ErrInvalidResetToken", err)
	}
}
