package models

import "time"

type Medicine struct {
	ID        uint      `gorm:"primaryKey" json:"medicine_id"`
	CycleID   uint      `gorm:"not null;index" json:"cycle_id"`
	Name      string    `gorm:"not null" json:"name"`
	Dosage    string    `gorm:"not null;default:''" json:"dosage"`
	TakenOn   time.Time `gorm:"type:date;not null" json:"taken_on"`
	Notes     string    `gorm:"not null;default:''" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
