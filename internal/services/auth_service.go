package services

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthUnavailable    = errors.New("auth storage unavailable")
	ErrPasswordUnchanged  = errors.New("new password must differ from the current one")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (service *AuthService) Register(name string, email string, password string) (models.User, error) {
	normalizedEmail := NormalizeEmail(email)
	if _, err := mail.ParseAddress(normalizedEmail); err != nil || normalizedEmail == "" {
		return models.User{}, ErrInvalidEmail
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return models.User{}, ErrAuthUnavailable
	}
	if exists {
		return models.User{}, ErrEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrAuthUnavailable
	}
	return user, nil
}

func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, ErrAuthUnavailable
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword verifies the current password and stores a new one. It
// clears the must-change flag set by a password reset.
func (service *AuthService) ChangePassword(email string, currentPassword string, newPassword string) (models.User, error) {
	user, err := service.Authenticate(email, currentPassword)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return models.User{}, err
	}
	if newPassword == currentPassword {
		return models.User{}, ErrPasswordUnchanged
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	if err := service.users.UpdatePassword(user.ID, string(passwordHash), false); err != nil {
		return models.User{}, ErrAuthUnavailable
	}

	user.PasswordHash = string(passwordHash)
	user.MustChangePassword = false
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
