// Package enrichment completes the second phase of prediction rows. The
// prediction engine inserts predictions with possible_start_start, end and
// length left empty; this job derives them from the linked reminder.
package enrichment

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/models"
)

const DefaultBatchSize = 100

type PredictionRepository interface {
	ListPendingEnrichment(limit int) ([]models.Prediction, error)
	Enrich(predictionID uint, possibleStartStart time.Time, end time.Time, length int) (bool, error)
}

type NotificationRepository interface {
	FindByID(notificationID uint) (models.Notification, bool, error)
}

type Job struct {
	predictions   PredictionRepository
	notifications NotificationRepository
	log           logrus.FieldLogger
	batchSize     int
	cronEngine    *cron.Cron
}

func NewJob(predictions PredictionRepository, notifications NotificationRepository, log logrus.FieldLogger) *Job {
	if log == nil {
		quiet := logrus.New()
		quiet.SetLevel(logrus.PanicLevel)
		log = quiet
	}
	return &Job{
		predictions:   predictions,
		notifications: notifications,
		log:           log.WithField("component", "enrichment"),
		batchSize:     DefaultBatchSize,
	}
}

// Start schedules RunOnce on a cron schedule. The scheduler runs in its own goroutine
// until Stop is called.
func (job *Job) Start(schedule string) error {
	engine := cron.New(cron.WithLocation(time.UTC))
	if _, err := engine.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := job.RunOnce(ctx); err != nil {
			job.log.WithError(err).Error("enrichment run failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule enrichment %q: %w", schedule, err)
	}

	job.cronEngine = engine
	engine.Start()
	job.log.WithField("schedule", schedule).Info("enrichment scheduler started")
	return nil
}

// Stop waits for a running batch to finish.
func (job *Job) Stop() {
	if job.cronEngine == nil {
		return
	}
	<-job.cronEngine.Stop().Done()
	job.cronEngine = nil
	job.log.Info("enrichment scheduler stopped")
}

// RunOnce enriches one batch of pending predictions and returns how many rows
// were updated. A prediction whose reminder is missing is skipped and logged.
func (job *Job) RunOnce(ctx context.Context) (int, error) {
	pending, err := job.predictions.ListPendingEnrichment(job.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list pending predictions: %w", err)
	}

	enriched := 0
	for _, prediction := range pending {
		if err := ctx.Err(); err != nil {
			return enriched, err
		}

		entry := job.log.WithFields(logrus.Fields{
			"prediction_id":   prediction.ID,
			"notification_id": prediction.NotificationID,
		})

		notification, found, err := job.notifications.FindByID(prediction.NotificationID)
		if err != nil {
			return enriched, fmt.Errorf("load notification %d: %w", prediction.NotificationID, err)
		}
		if !found {
			entry.Warn("prediction reminder missing, skipping enrichment")
			continue
		}

		updated, err := job.predictions.Enrich(
			prediction.ID,
			notification.StartDate,
			notification.EndDate,
			periodLength(notification.StartDate, notification.EndDate),
		)
		if err != nil {
			return enriched, fmt.Errorf("enrich prediction %d: %w", prediction.ID, err)
		}
		if updated {
			enriched++
			entry.Debug("prediction enriched")
		}
	}

	if enriched > 0 {
		job.log.WithField("count", enriched).Info("predictions enriched")
	}
	return enriched, nil
}

func periodLength(start time.Time, end time.Time) int {
	startYear, startMonth, startDay := start.Date()
	endYear, endMonth, endDay := end.Date()
	from := time.Date(startYear, startMonth, startDay, 0, 0, 0, 0, time.UTC)
	to := time.Date(endYear, endMonth, endDay, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
