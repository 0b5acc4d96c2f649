package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
)

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func makeCycle(t *testing.T, id uint, start string, length int) models.Cycle {
	t.Helper()
	startDate := mustParseDay(t, start)
	return models.Cycle{
		ID:        id,
		UserID:    1,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, length-1),
		Length:    length,
	}
}

func formatDay(value time.Time) string {
	return value.Format("2006-01-02")
}
