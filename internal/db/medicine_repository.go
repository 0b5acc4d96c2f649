package db

import (
	"github.com/terraincognita07/herhealth/internal/models"
	"gorm.io/gorm"
)

type MedicineRepository struct {
	database *gorm.DB
}

func NewMedicineRepository(database *gorm.DB) *MedicineRepository {
	return &MedicineRepository{database: database}
}

func (repo *MedicineRepository) Create(medicine *models.Medicine) error {
	return repo.database.Create(medicine).Error
}

func (repo *MedicineRepository) ListByUser(userID uint) ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	if err := repo.database.
		Model(&models.Medicine{}).
		Joins("JOIN cycles ON cycles.id = medicines.cycle_id").
		Where("cycles.user_id = ?", userID).
		Order("medicines.taken_on DESC, medicines.id DESC").
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}
