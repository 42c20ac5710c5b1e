package dto

import (
	"time"

	"lawlink_backend/internal/models"
)

type CreateConsultationRequest struct {
	LawyerID      uint   `json:"lawyer_id" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Description   string `json:"description"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	DurationHours int    `json:"duration_hours" binding:"required,min=1,max=8"`
	Mode          string `json:"mode" binding:"required" validate:"is-consultation-mode"`
	PaymentMode   string `json:"payment_mode" binding:"required" validate:"is-payment-mode"`
}

type TransitionRequest struct {
	Status string `json:"consultation_status" binding:"required" validate:"is-consultation-status"`

	// Optional note text, honored only on the complete-and-paid action.
	Note           string `json:"note"`
	Recommendation string `json:"recommendation"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM
}

type ConsultationResponse struct {
	ID            uint                      `json:"id"`
	ClientID      uint                      `json:"client_id"`
	LawyerID      uint                      `json:"lawyer_id"`
	ClientName    string                    `json:"client_name,omitempty"`
	LawyerName    string                    `json:"lawyer_name,omitempty"`
	Category      string                    `json:"category"`
	Description   string                    `json:"description"`
	Date          string                    `json:"date"`
	Time          string                    `json:"time"`
	DurationHours int                       `json:"duration_hours"`
	Fee           float64                   `json:"fee"`
	Mode          models.ConsultationMode   `json:"mode"`
	PaymentMode   models.PaymentMode        `json:"payment_mode"`
	Status        models.ConsultationStatus `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationResponse `json:"consultations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

type NoteResponse struct {
	ConsultationID uint   `json:"consultation_id"`
	Note           string `json:"note"`
	Recommendation string `json:"recommendation"`
}
