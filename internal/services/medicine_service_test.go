package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
)

type medicineRepositoryStub struct {
	created []models.Medicine
}

func (stub *medicineRepositoryStub) Create(medicine *models.Medicine) error {
	medicine.ID = uint(len(stub.created) + 1)
	stub.created = append(stub.created, *medicine)
	return nil
}

func (stub *medicineRepositoryStub) ListByUser(uint) ([]models.Medicine, error) {
	return stub.created, nil
}

type latestCycleRepositoryStub struct {
	cycle models.Cycle
	found bool
}

func (stub *latestCycleRepositoryStub) FindLatestByUser(uint) (models.Cycle, bool, error) {
	return stub.cycle, stub.found, nil
}

func TestLogMedicineAttachesToLatestCycle(t *testing.T) {
	t.Parallel()

	medicines := &medicineRepositoryStub{}
	cycles := &latestCycleRepositoryStub{cycle: makeCycle(t, 12, "2024-03-01", 5), found: true}
	service := NewMedicineService(medicines, cycles)

	now := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)
	medicine, err := service.LogMedicine(1, MedicineInput{Name: " Ibuprofen ", Dosage: "200mg"}, now, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if medicine.CycleID != 12 {
		t.Fatalf("expected cycle 12, got %d", medicine.CycleID)
	}
	if medicine.Name != "Ibuprofen" {
		t.Fatalf("expected trimmed name, got %q", medicine.Name)
	}
	if got := formatDay(medicine.TakenOn); got != "2024-03-03" {
		t.Fatalf("expected taken_on to default to today, got %s", got)
	}
}

func TestLogMedicineRequiresCycle(t *testing.T) {
	t.Parallel()

	service := NewMedicineService(&medicineRepositoryStub{}, &latestCycleRepositoryStub{})
	_, err := service.LogMedicine(1, MedicineInput{Name: "Ibuprofen"}, time.Now(), time.UTC)
	if !errors.Is(err, ErrMedicineNeedsCycle) {
		t.Fatalf("expected ErrMedicineNeedsCycle, got %v", err)
	}
}

func TestLogMedicineValidatesInput(t *testing.T) {
	t.Parallel()

	service := NewMedicineService(&medicineRepositoryStub{}, &latestCycleRepositoryStub{found: true})
	if _, err := service.LogMedicine(1, MedicineInput{Name: "  "}, time.Now(), time.UTC); !errors.Is(err, ErrMedicineNameRequired) {
		t.Fatalf("expected ErrMedicineNameRequired, got %v", err)
	}
	if _, err := service.LogMedicine(1, MedicineInput{Name: "Iron", TakenOn: "yesterday"}, time.Now(), time.UTC); !errors.Is(err, ErrInvalidMedicineTakenOn) {
		t.Fatalf("expected ErrInvalidMedicineTakenOn, got %v", err)
	}
}
