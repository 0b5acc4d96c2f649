package services

import (
	"errors"

	"github.com/terraincognita07/herhealth/internal/models"
)

var (
	ErrNotificationNotFound      = errors.New("notification not found")
	ErrNotificationDismissFailed = errors.New("dismiss notification failed")
)

type NotificationRepository interface {
	ListPendingByUser(userID uint) ([]models.Notification, error)
	MarkCompleted(userID uint, notificationID uint) (bool, error)
}

type NotificationService struct {
	notifications NotificationRepository
}

func NewNotificationService(notifications NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (service *NotificationService) ListPending(userID uint) ([]models.Notification, error) {
	return service.notifications.ListPendingByUser(userID)
}

// Dismiss moves a pending notification owned by userID to completed.
func (service *NotificationService) Dismiss(userID uint, notificationID uint) error {
	updated, err := service.notifications.MarkCompleted(userID, notificationID)
	if err != nil {
		return ErrNotificationDismissFailed
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}
