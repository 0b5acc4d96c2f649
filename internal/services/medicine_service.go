package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/herhealth/internal/models"
)

var (
	ErrMedicineNameRequired   = errors.New("medicine name is required")
	ErrMedicineNeedsCycle     = errors.New("log a cycle before logging medicine")
	ErrMedicineCreateFailed   = errors.New("create medicine failed")
	ErrMedicineLoadFailed     = errors.New("load medicines failed")
	ErrInvalidMedicineTakenOn = errors.New("invalid taken_on date")
)

type MedicineRepository interface {
	Create(medicine *models.Medicine) error
	ListByUser(userID uint) ([]models.Medicine, error)
}

type LatestCycleRepository interface {
	FindLatestByUser(userID uint) (models.Cycle, bool, error)
}

type MedicineInput struct {
	Name    string
	Dosage  string
	TakenOn string
	Notes   string
}

type MedicineService struct {
	medicines MedicineRepository
	cycles    LatestCycleRepository
}

func NewMedicineService(medicines MedicineRepository, cycles LatestCycleRepository) *MedicineService {
	return &MedicineService{medicines: medicines, cycles: cycles}
}

// LogMedicine attaches the entry to the user's most recent cycle. An empty
// TakenOn defaults to today in location.
func (service *MedicineService) LogMedicine(userID uint, input MedicineInput, now time.Time, location *time.Location) (models.Medicine, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Medicine{}, ErrMedicineNameRequired
	}

	takenOn := DateAtLocation(now, location)
	if raw := strings.TrimSpace(input.TakenOn); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return models.Medicine{}, ErrInvalidMedicineTakenOn
		}
		takenOn = parsed
	}

	cycle, found, err := service.cycles.FindLatestByUser(userID)
	if err != nil {
		return models.Medicine{}, ErrCycleLoadFailed
	}
	if !found {
		return models.Medicine{}, ErrMedicineNeedsCycle
	}

	medicine := models.Medicine{
		CycleID: cycle.ID,
		Name:    name,
		Dosage:  strings.TrimSpace(input.Dosage),
		TakenOn: takenOn,
		Notes:   strings.TrimSpace(input.Notes),
	}
	if err := service.medicines.Create(&medicine); err != nil {
		return models.Medicine{}, ErrMedicineCreateFailed
	}
	return medicine, nil
}

func (service *MedicineService) List(userID uint) ([]models.Medicine, error) {
	medicines, err := service.medicines.ListByUser(userID)
	if err != nil {
		return nil, ErrMedicineLoadFailed
	}
	return medicines, nil
}
