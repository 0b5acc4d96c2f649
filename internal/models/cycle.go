package models

import "time"

const DefaultCycleLength = 28

// Cycle is one recorded period. Rows are append-only: once created they are
// never updated or deleted by the application.
type Cycle struct {
	ID         uint      `gorm:"primaryKey" json:"cycle_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Length     int       `gorm:"not null" json:"length"`
	MoodSwings string    `gorm:"not null;default:''" json:"mood_swings"`
	Weight     *float64  `json:"weight"`
	Height     *float64  `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
}
