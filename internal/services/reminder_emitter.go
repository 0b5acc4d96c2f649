package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/herhealth/internal/models"
)

var ErrPersistenceFailure = errors.New("persist prediction failed")

// ReminderStore must write both records in one transaction and set
// prediction.NotificationID from the inserted notification.
type ReminderStore interface {
	CreateWithNotification(notification *models.Notification, prediction *models.Prediction) error
}

type ReminderEmitter struct {
	store ReminderStore
}

func NewReminderEmitter(store ReminderStore) *ReminderEmitter {
	return &ReminderEmitter{store: store}
}

// Emit persists a pending supply reminder and the prediction derived from
// forecast. The prediction's enrichment fields are left nil.
func (emitter *ReminderEmitter) Emit(userID uint, cycleID uint, forecast Forecast) (models.Notification, models.Prediction, error) {
	notification := models.Notification{
		UserID:          userID,
		StartDate:       forecast.NextStartDate,
		EndDate:         forecast.NextEndDate,
		MedicationStock: models.SupplyReminderMessage,
		Status:          models.NotificationStatusPending,
	}
	prediction := models.Prediction{
		CycleID:          cycleID,
		PossibleStartEnd: forecast.PossibleEndDate,
		OvulationDate:    forecast.OvulationDate,
	}

	if err := emitter.store.CreateWithNotification(&notification, &prediction); err != nil {
		return models.Notification{}, models.Prediction{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return notification, prediction, nil
}
