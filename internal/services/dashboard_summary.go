package services

import (
	"fmt"
	"time"
)

const dashboardReminderHorizonDays = 10

// DashboardReminderMessage returns the reminder shown for a predicted start
// that is between zero and ten calendar days after today.
func DashboardReminderMessage(predictedStart time.Time, today time.Time) (string, bool) {
	if predictedStart.IsZero() {
		return "", false
	}

	daysUntil := daysBetween(today, predictedStart)
	switch {
	case daysUntil == 0:
		return "Your next cycle is predicted to start today!", true
	case daysUntil > 0 && daysUntil <= dashboardReminderHorizonDays:
		return fmt.Sprintf("Your next cycle is predicted to start in %d days.", daysUntil), true
	default:
		return "", false
	}
}

// DateAtLocation maps an instant to its calendar day in location,
// represented as UTC midnight so it compares with stored dates.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return calendarDay(value.In(location))
}
