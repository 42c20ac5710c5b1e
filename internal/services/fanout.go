package services

import (
	"encoding/json"

	"lawlink_backend/internal/models"

	"gorm.io/datatypes"
)

// fanout.go holds the pure mapping from a lifecycle event to the
// notification records it produces. All persistence happens elsewhere, in
// the same transaction as the event itself.

// TransitionNotifications returns the notifications a status transition
// fans out, keyed by the target status, the consultation mode and whether a
// secretary performed the action. The sweep's silent Upcoming->Completed
// move never calls this.
func TransitionNotifications(c *models.Consultation, target models.ConsultationStatus, actingSecretaryID uint) []*models.Notification {
	var ns []*models.Notification

	switch target {
	case models.ConsultationRejected:
		ns = append(ns, &models.Notification{
			ConsultationID: c.ID,
			SenderID:       c.LawyerID,
			ReceiverID:     c.ClientID,
			Purpose:        models.PurposeRejected,
		})

	case models.ConsultationUnpaid:
		// Approval of a GCash booking: payment is required next.
		ns = append(ns, &models.Notification{
			ConsultationID: c.ID,
			SenderID:       c.LawyerID,
			ReceiverID:     c.ClientID,
			Purpose:        models.PurposeApprovedOnline,
		})

	case models.ConsultationUpcoming:
		if c.Status == models.ConsultationUnpaid {
			// Payment confirmation, not an approval.
			ns = append(ns, &models.Notification{
				ConsultationID: c.ID,
				SenderID:       c.LawyerID,
				ReceiverID:     c.ClientID,
				Purpose:        models.PurposePaymentConfirmed,
			})
		} else {
			ns = append(ns, &models.Notification{
				ConsultationID: c.ID,
				SenderID:       c.LawyerID,
				ReceiverID:     c.ClientID,
				Purpose:        models.PurposeApproved,
			})
		}

	case models.ConsultationCompletedPaid:
		ns = append(ns, &models.Notification{
			ConsultationID: c.ID,
			SenderID:       c.LawyerID,
			ReceiverID:     c.ClientID,
			Purpose:        models.PurposeCompleted,
		})
	}

	// Delegated approvals additionally inform the lawyer.
	if actingSecretaryID != 0 && c.Status == models.ConsultationPending &&
		(target == models.ConsultationUnpaid || target == models.ConsultationUpcoming) {
		ns = append(ns, &models.Notification{
			ConsultationID: c.ID,
			SenderID:       actingSecretaryID,
			ReceiverID:     c.LawyerID,
			Purpose:        models.PurposeApprovedBySecretary,
		})
	}

	return ns
}

// BookingNotification notifies the lawyer of a newly created consultation.
// The ConsultationID is filled in by the repository after the insert.
func BookingNotification(c *models.Consultation) *models.Notification {
	return &models.Notification{
		SenderID:   c.ClientID,
		ReceiverID: c.LawyerID,
		Purpose:    models.PurposeRequest,
	}
}

// RescheduleNotification tells the client their consultation moved.
func RescheduleNotification(c *models.Consultation, newDate, newTime string) *models.Notification {
	data, _ := json.Marshal(map[string]string{"date": newDate, "time": newTime})
	return &models.Notification{
		ConsultationID: c.ID,
		SenderID:       c.LawyerID,
		ReceiverID:     c.ClientID,
		Purpose:        models.PurposeReschedule,
		Data:           datatypes.JSON(data),
	}
}

// PaymentSubmittedNotification asks the lawyer to verify a submitted proof.
func PaymentSubmittedNotification(c *models.Consultation) *models.Notification {
	return &models.Notification{
		ConsultationID: c.ID,
		SenderID:       c.ClientID,
		ReceiverID:     c.LawyerID,
		Purpose:        models.PurposePaymentSubmitted,
	}
}

// PaymentDeniedNotification tells the client to resubmit their proof.
func PaymentDeniedNotification(c *models.Consultation) *models.Notification {
	return &models.Notification{
		ConsultationID: c.ID,
		SenderID:       c.LawyerID,
		ReceiverID:     c.ClientID,
		Purpose:        models.PurposePaymentDenied,
	}
}

// AffiliationNotifications. These are not tied to a consultation, so
// ConsultationID stays 0.

func ApplicationNotification(secretaryID, lawyerID uint) *models.Notification {
	return &models.Notification{
		SenderID:   secretaryID,
		ReceiverID: lawyerID,
		Purpose:    models.PurposeApplication,
	}
}

func ApplicationDecisionNotification(lawyerID, secretaryID uint, approved bool) *models.Notification {
	purpose := models.PurposeApplicationRejected
	if approved {
		purpose = models.PurposeApplicationAccepted
	}
	return &models.Notification{
		SenderID:   lawyerID,
		ReceiverID: secretaryID,
		Purpose:    purpose,
	}
}
