package dto

import (
	"time"

	"lawlink_backend/internal/models"
)

type RequestAffiliationRequest struct {
	LawyerID uint `json:"lawyer_id" binding:"required"`
}

type DecideAffiliationRequest struct {
	Approve bool `json:"approve"`
}

type AffiliationResponse struct {
	ID            uint                     `json:"id"`
	SecretaryID   uint                     `json:"secretary_id"`
	LawyerID      uint                     `json:"lawyer_id"`
	SecretaryName string                   `json:"secretary_name,omitempty"`
	LawyerName    string                   `json:"lawyer_name,omitempty"`
	WorkStatus    models.AffiliationStatus `json:"work_status"`
	CreatedAt     time.Time                `json:"created_at"`
}
