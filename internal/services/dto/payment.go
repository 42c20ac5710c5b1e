package dto

import "time"

type PaymentReceiptResponse struct {
	ID             uint      `json:"id"`
	ConsultationID uint      `json:"consultation_id"`
	SubmittedAt    time.Time `json:"submitted_at"`
	ImageURL       string    `json:"image_url,omitempty"`
}
