package models

import "time"

const (
	NotificationStatusPending   = "pending"
	NotificationStatusCompleted = "completed"
)

const SupplyReminderMessage = "Check supplies for next cycle"

type Notification struct {
	ID              uint      `gorm:"primaryKey" json:"noti_id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	StartDate       time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time `gorm:"type:date;not null" json:"end_date"`
	MedicationStock string    `gorm:"not null" json:"medication_stock"`
	Status          string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (notification Notification) IsPending() bool {
	return notification.Status == NotificationStatusPending
}
