package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/terraincognita07/herhealth/internal/models"
)

var (
	ErrCycleCreateFailed = errors.New("create cycle failed")
	ErrCycleLoadFailed   = errors.New("load cycles failed")
)

type CycleRepository interface {
	Create(cycle *models.Cycle) error
	ListByUser(userID uint) ([]models.Cycle, error)
}

type CyclePredictor interface {
	Run(userID uint, cycleID uint) bool
}

type CycleService struct {
	cycles    CycleRepository
	predictor CyclePredictor
	locks     *userLocks
}

func NewCycleService(cycles CycleRepository, predictor CyclePredictor) *CycleService {
	return &CycleService{
		cycles:    cycles,
		predictor: predictor,
		locks:     newUserLocks(),
	}
}

// LogCycle stores a new cycle and then runs the prediction for it on the
// same call. The returned flag reports whether a forecast was committed; a
// false flag is not an error, the cycle itself is saved either way.
func (service *CycleService) LogCycle(userID uint, input CycleInput) (models.Cycle, bool, error) {
	parsed, err := parseCycleInput(input)
	if err != nil {
		return models.Cycle{}, false, err
	}

	unlock := service.locks.lock(userID)
	defer unlock()

	cycle := models.Cycle{
		UserID:     userID,
		StartDate:  parsed.start,
		EndDate:    parsed.end,
		Length:     parsed.length,
		MoodSwings: strings.TrimSpace(input.MoodSwings),
		Weight:     input.Weight,
		Height:     input.Height,
	}
	if err := service.cycles.Create(&cycle); err != nil {
		return models.Cycle{}, false, ErrCycleCreateFailed
	}

	predicted := service.predictor.Run(userID, cycle.ID)
	return cycle, predicted, nil
}

// History lists cycles newest first.
func (service *CycleService) History(userID uint) ([]models.Cycle, error) {
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return nil, ErrCycleLoadFailed
	}

	history := make([]models.Cycle, 0, len(cycles))
	for index := len(cycles) - 1; index >= 0; index-- {
		history = append(history, cycles[index])
	}
	return history, nil
}

type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*userLock)}
}

func (locks *userLocks) lock(userID uint) func() {
	locks.mu.Lock()
	entry, ok := locks.locks[userID]
	if !ok {
		entry = &userLock{}
		locks.locks[userID] = entry
	}
	entry.refs++
	locks.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		locks.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(locks.locks, userID)
		}
		locks.mu.Unlock()
	}
}
