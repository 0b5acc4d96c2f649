package db

import (
	"github.com/terraincognita07/herhealth/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) ListPendingByUser(userID uint) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("user_id = ? AND status = ?", userID, models.NotificationStatusPending).
		Order("start_date ASC, id ASC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) FindByID(notificationID uint) (models.Notification, bool, error) {
	notification := models.Notification{}
	result := repo.database.Where("id = ?", notificationID).Limit(1).Find(&notification)
	if result.Error != nil {
		return models.Notification{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Notification{}, false, nil
	}
	return notification, true, nil
}

// MarkCompleted dismisses a notification owned by userID. It reports false
// when no row matched.
func (repo *NotificationRepository) MarkCompleted(userID uint, notificationID uint) (bool, error) {
	result := repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("status", models.NotificationStatusCompleted)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
