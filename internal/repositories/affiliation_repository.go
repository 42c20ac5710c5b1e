package repositories

import (
	"errors"

	"lawlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAffiliationNotFound = errors.New("affiliation not found")
	ErrAffiliationExists   = errors.New("affiliation request already exists")
)

type AffiliationRepository interface {
	// CreateWithNotification inserts the affiliation request and the
	// application notification to the lawyer atomically.
	CreateWithNotification(affiliation *models.SecretaryAffiliation, notification *models.Notification) error

	FindByID(id uint) (*models.SecretaryAffiliation, error)
	FindBySecretaryAndLawyer(secretaryID, lawyerID uint) (*models.SecretaryAffiliation, error)
	FindByLawyer(lawyerID uint) ([]models.SecretaryAffiliation, error)

	// UpdateStatusWithNotification flips the work status and notifies the
	// secretary in one transaction. Guarded on Pending so a request cannot
	// be decided twice.
	UpdateStatusWithNotification(id uint, status models.AffiliationStatus, notification *models.Notification) error
}

type AffiliationRepositoryImpl struct {
	db *gorm.DB
}

func NewAffiliationRepository(db *gorm.DB) AffiliationRepository {
	return &AffiliationRepositoryImpl{db: db}
}

func (r *AffiliationRepositoryImpl) CreateWithNotification(affiliation *models.SecretaryAffiliation, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.SecretaryAffiliation{}).
			Where("secretary_id = ? AND lawyer_id = ? AND work_status IN ?",
				affiliation.SecretaryID, affiliation.LawyerID,
				[]models.AffiliationStatus{models.AffiliationPending, models.AffiliationApproved}).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAffiliationExists
		}

		if err := tx.Create(affiliation).Error; err != nil {
			return err
		}

		return tx.Create(notification).Error
	})
}

func (r *AffiliationRepositoryImpl) FindByID(id uint) (*models.SecretaryAffiliation, error) {
	var affiliation models.SecretaryAffiliation
	err := r.db.Preload("Secretary").Preload("Lawyer").First(&affiliation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffiliationNotFound
		}
		return nil, err
	}
	return &affiliation, nil
}

func (r *AffiliationRepositoryImpl) FindBySecretaryAndLawyer(secretaryID, lawyerID uint) (*models.SecretaryAffiliation, error) {
	var affiliation models.SecretaryAffiliation
	err := r.db.Where("secretary_id = ? AND lawyer_id = ?", secretaryID, lawyerID).
		Order("created_at DESC").
		First(&affiliation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAffiliationNotFound
		}
		return nil, err
	}
	return &affiliation, nil
}

func (r *AffiliationRepositoryImpl) FindByLawyer(lawyerID uint) ([]models.SecretaryAffiliation, error) {
	var affiliations []models.SecretaryAffiliation
	err := r.db.Preload("Secretary").
		Where("lawyer_id = ?", lawyerID).
		Order("created_at DESC").
		Find(&affiliations).Error
	return affiliations, err
}

func (r *AffiliationRepositoryImpl) UpdateStatusWithNotification(id uint, status models.AffiliationStatus, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SecretaryAffiliation{}).
			Where("id = ? AND work_status = ?", id, models.AffiliationPending).
			Update("work_status", status)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAffiliationNotFound
		}

		return tx.Create(notification).Error
	})
}
