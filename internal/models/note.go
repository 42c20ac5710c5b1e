package models

// LawyerNote holds the lawyer's note and recommendation for a completed
// consultation, one row per consultation. The sweep inserts an empty row
// when it force-completes a booking so the client-facing read never 404s.
type LawyerNote struct {
	BaseModel
	ConsultationID uint   `gorm:"not null;uniqueIndex" json:"consultation_id"`
	Note           string `gorm:"type:text" json:"note"`
	Recommendation string `gorm:"type:text" json:"recommendation"`
}
