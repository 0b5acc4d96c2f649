package models

import "time"

// Prediction is written in two phases. The prediction engine inserts
// CycleID, NotificationID, PossibleStartEnd and OvulationDate. The
// enrichment job later fills PossibleStartStart, End and Length from the
// linked notification; until then the row is pending enrichment.
type Prediction struct {
	ID                 uint       `gorm:"primaryKey" json:"prediction_id"`
	CycleID            uint       `gorm:"not null;index" json:"cycle_id"`
	NotificationID     uint       `gorm:"column:notification_id;not null" json:"noti_id"`
	PossibleStartEnd   time.Time  `gorm:"type:date;not null" json:"possible_start_end"`
	OvulationDate      time.Time  `gorm:"type:date;not null" json:"ovulation_date"`
	PossibleStartStart *time.Time `gorm:"type:date" json:"possible_start_start"`
	End                *time.Time `gorm:"column:end_date;type:date" json:"end"`
	Length             *int       `json:"length"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (prediction Prediction) PendingEnrichment() bool {
	return prediction.PossibleStartStart == nil || prediction.End == nil || prediction.Length == nil
}
