package db

import (
	"testing"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{Email: email, PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := NewUserRepository(database).Create(&user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func createTestCycle(t *testing.T, database *gorm.DB, userID uint, start string, length int) models.Cycle {
	t.Helper()

	startDate := mustParseDBDay(t, start)
	cycle := models.Cycle{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, length-1),
		Length:    length,
	}
	if err := NewCycleRepository(database).Create(&cycle); err != nil {
		t.Fatalf("create cycle %s: %v", start, err)
	}
	return cycle
}

func mustParseDBDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func countRows(t *testing.T, database *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	if err := database.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func medicineFixture(t *testing.T, cycleID uint, name string, takenOn string) models.Medicine {
	t.Helper()
	return models.Medicine{CycleID: cycleID, Name: name, TakenOn: mustParseDBDay(t, takenOn)}
}
