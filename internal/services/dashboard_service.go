package services

import (
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
)

type DashboardNotificationRepository interface {
	ListPendingByUser(userID uint) ([]models.Notification, error)
	FindByID(notificationID uint) (models.Notification, bool, error)
}

type DashboardPredictionRepository interface {
	FindLatestByUser(userID uint) (models.Prediction, bool, error)
}

type DashboardCycleRepository interface {
	ListByUser(userID uint) ([]models.Cycle, error)
}

type DashboardNotification struct {
	ID              uint       `json:"noti_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	MedicationStock string     `json:"medication_stock"`
	Status          string     `json:"status"`
	Dynamic         bool       `json:"dynamic"`
}

type CycleChart struct {
	Labels       []string   `json:"labels"`
	Weight       []*float64 `json:"weight"`
	Height       []*float64 `json:"height"`
	PeriodLength []int      `json:"period_length"`
	CycleLength  []*int     `json:"cycle_length"`
}

type Dashboard struct {
	Notifications  []DashboardNotification `json:"notifications"`
	Prediction     *models.Prediction      `json:"prediction"`
	PredictedStart *time.Time              `json:"predicted_start"`
	Chart          CycleChart              `json:"chart"`
}

type DashboardService struct {
	notifications DashboardNotificationRepository
	predictions   DashboardPredictionRepository
	cycles        DashboardCycleRepository
}

func NewDashboardService(notifications DashboardNotificationRepository, predictions DashboardPredictionRepository, cycles DashboardCycleRepository) *DashboardService {
	return &DashboardService{
		notifications: notifications,
		predictions:   predictions,
		cycles:        cycles,
	}
}

func (service *DashboardService) Build(userID uint, now time.Time, location *time.Location) (Dashboard, error) {
	pending, err := service.notifications.ListPendingByUser(userID)
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Notifications: make([]DashboardNotification, 0, len(pending)+1),
	}

	prediction, found, err := service.predictions.FindLatestByUser(userID)
	if err != nil {
		return Dashboard{}, err
	}
	if found {
		dashboard.Prediction = &prediction

		predictedStart, err := service.predictedStart(prediction)
		if err != nil {
			return Dashboard{}, err
		}
		if !predictedStart.IsZero() {
			dashboard.PredictedStart = &predictedStart

			today := DateAtLocation(now, location)
			if message, ok := DashboardReminderMessage(predictedStart, today); ok {
				dashboard.Notifications = append(dashboard.Notifications, DashboardNotification{
					StartDate:       today,
					MedicationStock: message,
					Status:          models.NotificationStatusPending,
					Dynamic:         true,
				})
			}
		}
	}

	for _, notification := range pending {
		endDate := notification.EndDate
		dashboard.Notifications = append(dashboard.Notifications, DashboardNotification{
			ID:              notification.ID,
			StartDate:       notification.StartDate,
			EndDate:         &endDate,
			MedicationStock: notification.MedicationStock,
			Status:          notification.Status,
		})
	}

	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return Dashboard{}, err
	}
	dashboard.Chart = BuildCycleChart(cycles)

	return dashboard, nil
}

// predictedStart prefers the enriched possible_start_start and falls back
// to the start date of the notification written with the prediction.
func (service *DashboardService) predictedStart(prediction models.Prediction) (time.Time, error) {
	if prediction.PossibleStartStart != nil {
		return calendarDay(*prediction.PossibleStartStart), nil
	}

	notification, found, err := service.notifications.FindByID(prediction.NotificationID)
	if err != nil {
		return time.Time{}, err
	}
	if !found {
		return time.Time{}, nil
	}
	return calendarDay(notification.StartDate), nil
}

// BuildCycleChart expects cycles in ascending start order. The first cycle
// has no previous start, so its cycle length is nil.
func BuildCycleChart(cycles []models.Cycle) CycleChart {
	chart := CycleChart{
		Labels:       make([]string, 0, len(cycles)),
		Weight:       make([]*float64, 0, len(cycles)),
		Height:       make([]*float64, 0, len(cycles)),
		PeriodLength: make([]int, 0, len(cycles)),
		CycleLength:  make([]*int, 0, len(cycles)),
	}

	for index, cycle := range cycles {
		chart.Labels = append(chart.Labels, cycle.StartDate.Format("Jan 02"))
		chart.Weight = append(chart.Weight, cycle.Weight)
		chart.Height = append(chart.Height, cycle.Height)
		chart.PeriodLength = append(chart.PeriodLength, cycle.Length)

		if index == 0 {
			chart.CycleLength = append(chart.CycleLength, nil)
			continue
		}
		gap := daysBetween(cycles[index-1].StartDate, cycle.StartDate)
		chart.CycleLength = append(chart.CycleLength, &gap)
	}

	return chart
}
