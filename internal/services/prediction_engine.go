package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/models"
)

type PredictionCycleRepository interface {
	ListRecentByUser(userID uint, limit int) ([]models.Cycle, error)
}

type PredictionResult struct {
	Estimate     CycleEstimate
	Forecast     Forecast
	Notification models.Notification
	Prediction   models.Prediction
}

// PredictionEngine turns a user's recent cycles into a persisted forecast.
// It keeps no state between runs; callers serialize runs per user.
type PredictionEngine struct {
	cycles  PredictionCycleRepository
	emitter *ReminderEmitter
	log     logrus.FieldLogger
}

func NewPredictionEngine(cycles PredictionCycleRepository, store ReminderStore, log logrus.FieldLogger) *PredictionEngine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PredictionEngine{
		cycles:  cycles,
		emitter: NewReminderEmitter(store),
		log:     log.WithField("component", "prediction_engine"),
	}
}

// Run predicts the cycle after cycleID and reports whether a notification
// and prediction were committed. Failures are logged, never returned.
func (engine *PredictionEngine) Run(userID uint, cycleID uint) bool {
	entry := engine.log.WithFields(logrus.Fields{"user_id": userID, "cycle_id": cycleID})

	result, err := engine.Predict(userID, cycleID)
	switch {
	case err == nil:
		entry.WithFields(logrus.Fields{
			"prediction_id":   result.Prediction.ID,
			"next_start_date": result.Forecast.NextStartDate.Format("2006-01-02"),
		}).Info("prediction created")
		return true
	case errors.Is(err, ErrInsufficientHistory):
		entry.Info("not enough cycle history to predict")
		return false
	default:
		entry.WithError(err).Error("prediction failed")
		return false
	}
}

func (engine *PredictionEngine) Predict(userID uint, cycleID uint) (PredictionResult, error) {
	cycles, err := engine.cycles.ListRecentByUser(userID, RecentCycleWindow)
	if err != nil {
		return PredictionResult{}, fmt.Errorf("%w: load cycles: %v", ErrPersistenceFailure, err)
	}

	estimate, err := EstimateCycleLengths(cycles)
	if err != nil {
		return PredictionResult{}, err
	}

	lastStart := cycles[0].StartDate
	if lastStart.IsZero() {
		return PredictionResult{}, ErrMalformedHistory
	}

	forecast := CalculateForecast(lastStart, estimate.AverageCycleLength, estimate.AveragePeriodLength)
	notification, prediction, err := engine.emitter.Emit(userID, cycleID, forecast)
	if err != nil {
		return PredictionResult{}, err
	}

	return PredictionResult{
		Estimate:     estimate,
		Forecast:     forecast,
		Notification: notification,
		Prediction:   prediction,
	}, nil
}
