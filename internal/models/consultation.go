package models

import "time"

// Consultation is one booking between a client and a lawyer. The status
// column is the only field with transition rules; everything else is either
// immutable after creation or overwritten in place by a reschedule.
type Consultation struct {
	BaseModel
	ClientID uint `gorm:"not null;index" json:"client_id"`
	LawyerID uint `gorm:"not null;index" json:"lawyer_id"`

	Category    string `gorm:"not null" json:"category"`
	Description string `gorm:"type:text" json:"description"`

	Date          time.Time `gorm:"type:date;not null" json:"date"`
	Time          string    `gorm:"type:varchar(5);not null" json:"time"` // HH:MM
	DurationHours int       `gorm:"not null" json:"duration_hours"`

	Fee         float64            `gorm:"not null" json:"fee"` // rate x duration, frozen at creation
	Mode        ConsultationMode   `gorm:"type:varchar(20);not null" json:"mode"`
	PaymentMode PaymentMode        `gorm:"type:varchar(20);not null" json:"payment_mode"`
	Status      ConsultationStatus `gorm:"column:consultation_status;type:varchar(20);default:'Pending'" json:"status"`

	// Relations
	Client *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Lawyer *User `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
}
