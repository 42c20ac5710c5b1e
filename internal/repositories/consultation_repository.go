package repositories

import (
	"errors"
	"time"

	"lawlink_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrConsultationNotFound = errors.New("consultation not found")

	// ErrStatusConflict is returned when the guarded status update matched
	// no row: a concurrent transition committed first and the caller's view
	// of the status is stale.
	ErrStatusConflict = errors.New("consultation status changed concurrently")
)

type ConsultationRepository interface {
	// CreateWithNotification inserts the consultation and its booking
	// notification in one transaction. The notification's ConsultationID is
	// filled in after the insert.
	CreateWithNotification(consultation *models.Consultation, notification *models.Notification) error

	FindByID(id uint) (*models.Consultation, error)
	FindByClient(clientID uint, limit, offset int) ([]models.Consultation, int64, error)
	FindByLawyer(lawyerID uint, limit, offset int) ([]models.Consultation, int64, error)

	// UpdateStatus atomically moves the consultation from exactly `from` to
	// `to`, inserts the transition's notifications and, when note is
	// non-nil, upserts the lawyer note. The UPDATE is guarded on the old
	// status so two concurrent transitions cannot both win; the loser gets
	// ErrStatusConflict and no rows change.
	UpdateStatus(id uint, from, to models.ConsultationStatus, notifications []*models.Notification, note *models.LawyerNote) error

	// UpdateSchedule overwrites date/time in place (status untouched) and
	// inserts the reschedule notifications in the same transaction.
	UpdateSchedule(id uint, date time.Time, timeOfDay string, notifications []*models.Notification) error

	// CompleteOverdue flips every Upcoming consultation dated strictly
	// before the given day to Completed and backfills an empty LawyerNote
	// for each row that lacks one. Returns the affected consultation IDs.
	// Safe to re-run: rows already Completed are not selected again.
	CompleteOverdue(before time.Time) ([]uint, error)
}

type ConsultationRepositoryImpl struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &ConsultationRepositoryImpl{db: db}
}

func (r *ConsultationRepositoryImpl) CreateWithNotification(consultation *models.Consultation, notification *models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(consultation).Error; err != nil {
			return err
		}

		notification.ConsultationID = consultation.ID
		return tx.Create(notification).Error
	})
}

func (r *ConsultationRepositoryImpl) FindByID(id uint) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.db.Preload("Client").Preload("Lawyer").First(&consultation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *ConsultationRepositoryImpl) FindByClient(clientID uint, limit, offset int) ([]models.Consultation, int64, error) {
	return r.findByParty("client_id", clientID, limit, offset)
}

func (r *ConsultationRepositoryImpl) FindByLawyer(lawyerID uint, limit, offset int) ([]models.Consultation, int64, error) {
	return r.findByParty("lawyer_id", lawyerID, limit, offset)
}

func (r *ConsultationRepositoryImpl) findByParty(column string, id uint, limit, offset int) ([]models.Consultation, int64, error) {
	query := r.db.Model(&models.Consultation{}).Where(column+" = ?", id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var consultations []models.Consultation
	err := query.Preload("Client").Preload("Lawyer").
		Order("date DESC, time DESC").
		Limit(limit).Offset(offset).
		Find(&consultations).Error
	if err != nil {
		return nil, 0, err
	}

	return consultations, total, nil
}

func (r *ConsultationRepositoryImpl) UpdateStatus(id uint, from, to models.ConsultationStatus, notifications []*models.Notification, note *models.LawyerNote) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Consultation{}).
			Where("id = ? AND consultation_status = ?", id, from).
			Update("consultation_status", to)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Consultation{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrConsultationNotFound
			}
			return ErrStatusConflict
		}

		if len(notifications) > 0 {
			if err := tx.Create(notifications).Error; err != nil {
				return err
			}
		}

		if note != nil {
			var existing models.LawyerNote
			err := tx.Where("consultation_id = ?", note.ConsultationID).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return tx.Create(note).Error
			case err != nil:
				return err
			default:
				existing.Note = note.Note
				existing.Recommendation = note.Recommendation
				return tx.Save(&existing).Error
			}
		}

		return nil
	})
}

func (r *ConsultationRepositoryImpl) UpdateSchedule(id uint, date time.Time, timeOfDay string, notifications []*models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Consultation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"date": date,
				"time": timeOfDay,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrConsultationNotFound
		}

		if len(notifications) > 0 {
			return tx.Create(notifications).Error
		}
		return nil
	})
}

func (r *ConsultationRepositoryImpl) CompleteOverdue(before time.Time) ([]uint, error) {
	var completed []uint

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Lock the candidate rows so a concurrent transition cannot flip
		// one between the select and the update; every plucked id is
		// guaranteed to complete, get its note and be counted.
		var ids []uint
		err := tx.Model(&models.Consultation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("consultation_status = ? AND date < ?", models.ConsultationUpcoming, before).
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		err = tx.Model(&models.Consultation{}).
			Where("id IN ?", ids).
			Update("consultation_status", models.ConsultationCompleted).Error
		if err != nil {
			return err
		}

		for _, id := range ids {
			var count int64
			if err := tx.Model(&models.LawyerNote{}).Where("consultation_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				if err := tx.Create(&models.LawyerNote{ConsultationID: id}).Error; err != nil {
					return err
				}
			}
		}

		completed = ids
		return nil
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}
