package repositories

import (
	"errors"

	"lawlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReceiptNotFound = errors.New("payment receipt not found")

type PaymentRepository interface {
	// SaveWithNotification creates the receipt, or replaces the existing
	// one for the same consultation, and inserts the payment-submitted
	// notification in the same transaction.
	SaveWithNotification(receipt *models.PaymentReceipt, notification *models.Notification) error

	FindByConsultation(consultationID uint) (*models.PaymentReceipt, error)

	// DeleteWithNotification removes the receipt (clearing the submission
	// signal) and inserts the denial notification atomically. The
	// consultation status is deliberately left alone.
	DeleteWithNotification(consultationID uint, notification *models.Notification) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) SaveWithNotification(receipt *models.PaymentReceipt, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("consultation_id = ?", receipt.ConsultationID).
			Delete(&models.PaymentReceipt{}).Error
		if err != nil {
			return err
		}

		if err := tx.Create(receipt).Error; err != nil {
			return err
		}

		return tx.Create(notification).Error
	})
}

func (r *PaymentRepositoryImpl) FindByConsultation(consultationID uint) (*models.PaymentReceipt, error) {
	var receipt models.PaymentReceipt
	err := r.db.Where("consultation_id = ?", consultationID).First(&receipt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, err
	}
	return &receipt, nil
}

func (r *PaymentRepositoryImpl) DeleteWithNotification(consultationID uint, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("consultation_id = ?", consultationID).
			Delete(&models.PaymentReceipt{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReceiptNotFound
		}

		return tx.Create(notification).Error
	})
}
