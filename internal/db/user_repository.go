package db

import (
	"github.com/terraincognita07/herhealth/internal/models"
	"gorm.io/gorm"
)

// normalizedEmailClause matches the expression of idx_users_email_normalized.
const normalizedEmailClause = "lower(trim(email)) = ?"

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// FindByID returns gorm.ErrRecordNotFound when the user does not exist.
func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	user := models.User{}
	err := repo.database.Take(&user, userID).Error
	return user, err
}

// FindByNormalizedEmail expects an already normalized address and returns
// gorm.ErrRecordNotFound when no account uses it.
func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user := models.User{}
	err := repo.database.Where(normalizedEmailClause, email).Take(&user).Error
	return user, err
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var count int64
	err := repo.database.Model(&models.User{}).Where(normalizedEmailClause, email).Count(&count).Error
	return count > 0, err
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// UpdatePassword stores a new hash and sets whether the next login must
// replace it.
func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash":        passwordHash,
			"must_change_password": mustChangePassword,
		}).Error
}
