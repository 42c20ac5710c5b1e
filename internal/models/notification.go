package models

import (
	"gorm.io/datatypes"
)

// Notification is one fire-and-forget record produced as a side effect of a
// status transition, a payment sub-flow step, a reschedule, or an
// affiliation event. ConsultationID 0 means the notification is not tied to
// a consultation (affiliation events). Never deleted; only the status flips
// to read.
type Notification struct {
	BaseModel
	ConsultationID uint                `gorm:"index;default:0" json:"consultation_id"`
	SenderID       uint                `gorm:"not null" json:"sender_id"`
	ReceiverID     uint                `gorm:"not null;index" json:"receiver_id"`
	Purpose        NotificationPurpose `gorm:"type:varchar(30);not null" json:"purpose"`
	Status         NotificationStatus  `gorm:"type:varchar(10);default:'unread'" json:"status"`
	Data           datatypes.JSON      `gorm:"type:jsonb" json:"data,omitempty"` // {"date": "...", "time": "..."}
}
