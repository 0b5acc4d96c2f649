package services

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/models"
)

type predictionCycleRepositoryStub struct {
	cycles    []models.Cycle
	err       error
	lastLimit int
}

func (stub *predictionCycleRepositoryStub) ListRecentByUser(_ uint, limit int) ([]models.Cycle, error) {
	stub.lastLimit = limit
	if stub.err != nil {
		return nil, stub.err
	}
	if len(stub.cycles) > limit {
		return stub.cycles[:limit], nil
	}
	return stub.cycles, nil
}

// reminderStoreStub mimics a transactional store: nothing is kept unless
// both inserts succeed.
type reminderStoreStub struct {
	notifications       []models.Notification
	predictions         []models.Prediction
	failPredictionWrite error
	nextID              uint
}

func (stub *reminderStoreStub) CreateWithNotification(notification *models.Notification, prediction *models.Prediction) error {
	stub.nextID++
	notification.ID = stub.nextID
	prediction.NotificationID = notification.ID

	if stub.failPredictionWrite != nil {
		return stub.failPredictionWrite
	}

	stub.nextID++
	prediction.ID = stub.nextID
	stub.notifications = append(stub.notifications, *notification)
	stub.predictions = append(stub.predictions, *prediction)
	return nil
}

func newQuietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestPredictionEngineRunPersistsNotificationAndPrediction(t *testing.T) {
	t.Parallel()

	cycles := &predictionCycleRepositoryStub{cycles: []models.Cycle{
		makeCycle(t, 3, "2024-03-01", 5),
		makeCycle(t, 2, "2024-02-01", 4),
		makeCycle(t, 1, "2024-01-03", 6),
	}}
	store := &reminderStoreStub{}
	engine := NewPredictionEngine(cycles, store, newQuietLogger())

	if ok := engine.Run(1, 3); !ok {
		t.Fatal("expected prediction run to succeed")
	}
	if cycles.lastLimit != RecentCycleWindow {
		t.Fatalf("expected history limit %d, got %d", RecentCycleWindow, cycles.lastLimit)
	}
	if len(store.notifications) != 1 || len(store.predictions) != 1 {
		t.Fatalf("expected one notification and one prediction, got %d and %d", len(store.notifications), len(store.predictions))
	}

	notification := store.notifications[0]
	if notification.UserID != 1 {
		t.Fatalf("expected notification for user 1, got %d", notification.UserID)
	}
	if got := formatDay(notification.StartDate); got != "2024-03-30" {
		t.Fatalf("expected notification start 2024-03-30, got %s", got)
	}
	if got := formatDay(notification.EndDate); got != "2024-04-04" {
		t.Fatalf("expected notification end 2024-04-04, got %s", got)
	}
	if notification.MedicationStock != models.SupplyReminderMessage {
		t.Fatalf("unexpected notification message %q", notification.MedicationStock)
	}
	if notification.Status != models.NotificationStatusPending {
		t.Fatalf("expected pending status, got %q", notification.Status)
	}

	prediction := store.predictions[0]
	if prediction.CycleID != 3 {
		t.Fatalf("expected prediction for cycle 3, got %d", prediction.CycleID)
	}
	if prediction.NotificationID != notification.ID {
		t.Fatalf("expected prediction linked to notification %d, got %d", notification.ID, prediction.NotificationID)
	}
	if got := formatDay(prediction.PossibleStartEnd); got != "2024-04-01" {
		t.Fatalf("expected possible start end 2024-04-01, got %s", got)
	}
	if got := formatDay(prediction.OvulationDate); got != "2024-03-16" {
		t.Fatalf("expected ovulation 2024-03-16, got %s", got)
	}
	if !prediction.PendingEnrichment() {
		t.Fatal("expected enrichment fields to be left unset")
	}
}

func TestPredictionEngineRunSkipsWithInsufficientHistory(t *testing.T) {
	t.Parallel()

	cycles := &predictionCycleRepositoryStub{cycles: []models.Cycle{makeCycle(t, 1, "2024-01-01", 5)}}
	store := &reminderStoreStub{}
	engine := NewPredictionEngine(cycles, store, newQuietLogger())

	if ok := engine.Run(1, 1); ok {
		t.Fatal("expected run to report no forecast")
	}
	if store.nextID != 0 {
		t.Fatal("expected no writes with insufficient history")
	}

	if _, err := engine.Predict(1, 1); !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestPredictionEngineRunReportsPersistenceFailure(t *testing.T) {
	t.Parallel()

	cycles := &predictionCycleRepositoryStub{cycles: []models.Cycle{
		makeCycle(t, 2, "2024-02-01", 4),
		makeCycle(t, 1, "2024-01-03", 6),
	}}
	store := &reminderStoreStub{failPredictionWrite: errors.New("disk full")}
	engine := NewPredictionEngine(cycles, store, newQuietLogger())

	if ok := engine.Run(1, 2); ok {
		t.Fatal("expected run to fail")
	}
	if len(store.notifications) != 0 || len(store.predictions) != 0 {
		t.Fatal("expected no persisted records after failure")
	}

	if _, err := engine.Predict(1, 2); !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
}

func TestPredictionEngineRunFailsSafelyOnHistoryLoadError(t *testing.T) {
	t.Parallel()

	cycles := &predictionCycleRepositoryStub{err: errors.New("connection reset")}
	store := &reminderStoreStub{}
	engine := NewPredictionEngine(cycles, store, newQuietLogger())

	if ok := engine.Run(1, 2); ok {
		t.Fatal("expected run to fail")
	}
	if _, err := engine.Predict(1, 2); !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
	if store.nextID != 0 {
		t.Fatal("expected no writes after load failure")
	}
}

func TestPredictionEngineRejectsMissingLatestStartDate(t *testing.T) {
	t.Parallel()

	cycles := &predictionCycleRepositoryStub{cycles: []models.Cycle{
		{ID: 2, UserID: 1, Length: 5},
		makeCycle(t, 1, "2024-01-03", 6),
	}}
	store := &reminderStoreStub{}
	engine := NewPredictionEngine(cycles, store, newQuietLogger())

	if _, err := engine.Predict(1, 2); !errors.Is(err, ErrMalformedHistory) {
		t.Fatalf("expected ErrMalformedHistory, got %v", err)
	}
	if store.nextID != 0 {
		t.Fatal("expected no writes for malformed history")
	}
}
