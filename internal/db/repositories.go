package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Cycles        *CycleRepository
	Notifications *NotificationRepository
	Predictions   *PredictionRepository
	Medicines     *MedicineRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Cycles:        NewCycleRepository(database),
		Notifications: NewNotificationRepository(database),
		Predictions:   NewPredictionRepository(database),
		Medicines:     NewMedicineRepository(database),
	}
}
