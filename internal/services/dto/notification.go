package dto

import (
	"time"

	"lawlink_backend/internal/models"
)

type NotificationResponse struct {
	ID             uint                       `json:"id"`
	ConsultationID uint                       `json:"consultation_id"`
	SenderID       uint                       `json:"sender_id"`
	ReceiverID     uint                       `json:"receiver_id"`
	Purpose        models.NotificationPurpose `json:"purpose"`
	Status         models.NotificationStatus  `json:"status"`
	CreatedAt      time.Time                  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	UnreadCount   int64                  `json:"unread_count"`
}
