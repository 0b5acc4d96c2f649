package cli

import (
	"errors"
	"fmt"
	"io"
	"net/mail"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/db"
	"github.com/terraincognita07/herhealth/internal/models"
	"github.com/terraincognita07/herhealth/internal/security"
	"github.com/terraincognita07/herhealth/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

type PasswordResetRepository interface {
	FindByNormalizedEmail(email string) (models.User, error)
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

func RunResetPasswordCommand(options db.Options, email string, out io.Writer, log logrus.FieldLogger) error {
	database, err := db.Open(options, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	temporaryPassword, err := ResetPassword(db.NewUserRepository(database), email)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}

// ResetPassword replaces the user's password with a temporary one and flags
// the account so the next login has to change it.
func ResetPassword(users PasswordResetRepository, email string) (string, error) {
	normalizedEmail := services.NormalizeEmail(email)
	if normalizedEmail == "" {
		return "", errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return "", fmt.Errorf("invalid email address: %w", err)
	}

	user, err := users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user %s not found", normalizedEmail)
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash temporary password: %w", err)
	}

	if err := users.UpdatePassword(user.ID, string(passwordHash), true); err != nil {
		return "", fmt.Errorf("update user password: %w", err)
	}
	return temporaryPassword, nil
}
