package repositories

import (
	"errors"

	"lawlink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNoteNotFound = errors.New("lawyer note not found")

type NoteRepository interface {
	FindByConsultation(consultationID uint) (*models.LawyerNote, error)
}

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) FindByConsultation(consultationID uint) (*models.LawyerNote, error) {
	var note models.LawyerNote
	err := r.db.Where("consultation_id = ?", consultationID).First(&note).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}
