package db

import (
	"fmt"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
	"gorm.io/gorm"
)

type PredictionRepository struct {
	database *gorm.DB
}

func NewPredictionRepository(database *gorm.DB) *PredictionRepository {
	return &PredictionRepository{database: database}
}

// CreateWithNotification inserts the notification, links its generated id
// into the prediction and inserts the prediction. Both rows commit together
// or neither does.
func (repo *PredictionRepository) CreateWithNotification(notification *models.Notification, prediction *models.Prediction) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}

		prediction.NotificationID = notification.ID
		if err := tx.Create(prediction).Error; err != nil {
			return fmt.Errorf("insert prediction: %w", err)
		}
		return nil
	})
}

func (repo *PredictionRepository) FindLatestByUser(userID uint) (models.Prediction, bool, error) {
	prediction := models.Prediction{}
	result := repo.database.
		Model(&models.Prediction{}).
		Joins("JOIN cycles ON cycles.id = predictions.cycle_id").
		Where("cycles.user_id = ?", userID).
		Order("predictions.id DESC").
		Limit(1).
		Find(&prediction)
	if result.Error != nil {
		return models.Prediction{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Prediction{}, false, nil
	}
	return prediction, true, nil
}

// ListPendingEnrichment returns predictions whose second-phase fields are
// still unset, oldest first.
func (repo *PredictionRepository) ListPendingEnrichment(limit int) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := repo.database.
		Where("possible_start_start IS NULL OR end_date IS NULL OR length IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

// Enrich fills the second-phase fields of a prediction. Rows that were
// already enriched are left untouched.
func (repo *PredictionRepository) Enrich(predictionID uint, possibleStartStart time.Time, end time.Time, length int) (bool, error) {
	result := repo.database.Model(&models.Prediction{}).
		Where("id = ? AND possible_start_start IS NULL", predictionID).
		Updates(map[string]any{
			"possible_start_start": possibleStartStart,
			"end_date":             end,
			"length":               length,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
