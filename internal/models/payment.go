package models

import "time"

// PaymentReceipt is the proof-of-payment a client submits for a GCash
// consultation. At most one active receipt per consultation: a resubmission
// replaces the row, a lawyer denial deletes it. Its existence is the signal
// that proof has been submitted; deleting it does not touch the
// consultation status.
type PaymentReceipt struct {
	BaseModel
	ConsultationID uint      `gorm:"not null;uniqueIndex" json:"consultation_id"`
	ClientID       uint      `gorm:"not null;index" json:"client_id"`
	LawyerID       uint      `gorm:"not null;index" json:"lawyer_id"`
	ImagePath      string    `gorm:"not null" json:"-"` // storage object key
	SubmittedAt    time.Time `gorm:"not null" json:"submitted_at"`
}
