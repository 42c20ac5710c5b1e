package repositories

import (
	"errors"

	"lawlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAvailabilityNotFound = errors.New("availability not found")

type AvailabilityRepository interface {
	FindByLawyer(lawyerID uint) (*models.Availability, error)
	Upsert(availability *models.Availability) error
}

type AvailabilityRepositoryImpl struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &AvailabilityRepositoryImpl{db: db}
}

func (r *AvailabilityRepositoryImpl) FindByLawyer(lawyerID uint) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.Where("lawyer_id = ?", lawyerID).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (r *AvailabilityRepositoryImpl) Upsert(availability *models.Availability) error {
	var existing models.Availability
	err := r.db.Where("lawyer_id = ?", availability.LawyerID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(availability).Error
	case err != nil:
		return err
	default:
		availability.ID = existing.ID
		availability.CreatedAt = existing.CreatedAt
		return r.db.Save(availability).Error
	}
}
