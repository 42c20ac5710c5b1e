package models

type UserRole string
type ConsultationStatus string
type ConsultationMode string
type PaymentMode string
type NotificationPurpose string
type NotificationStatus string
type AffiliationStatus string

const (
	UserRoleClient    UserRole = "client"
	UserRoleLawyer    UserRole = "lawyer"
	UserRoleSecretary UserRole = "secretary"
	UserRoleAdmin     UserRole = "admin"

	ConsultationPending       ConsultationStatus = "Pending"
	ConsultationUnpaid        ConsultationStatus = "Unpaid"
	ConsultationUpcoming      ConsultationStatus = "Upcoming"
	ConsultationRejected      ConsultationStatus = "Rejected"
	ConsultationCompleted     ConsultationStatus = "Completed"
	ConsultationCompletedPaid ConsultationStatus = "Completed_Paid"

	ModeOnline   ConsultationMode = "Online"
	ModeInPerson ConsultationMode = "In-Person"

	PaymentModeGCash          PaymentMode = "GCash"
	PaymentModeOverTheCounter PaymentMode = "Over the Counter"

	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"

	AffiliationPending  AffiliationStatus = "Pending"
	AffiliationApproved AffiliationStatus = "Approved"
	AffiliationRejected AffiliationStatus = "Rejected"
)

// Notification purposes. Each purpose belongs to exactly one recipient
// role's feed; the allow-lists live in the notification service.
const (
	PurposeRequest             NotificationPurpose = "request"
	PurposeRejected            NotificationPurpose = "rejected"
	PurposeApproved            NotificationPurpose = "approved"
	PurposeApprovedOnline      NotificationPurpose = "approved_online"
	PurposeApprovedBySecretary NotificationPurpose = "approved_by_secretary"
	PurposePaymentSubmitted    NotificationPurpose = "payment_submitted"
	PurposePaymentConfirmed    NotificationPurpose = "payment_confirmed"
	PurposePaymentDenied       NotificationPurpose = "payment_denied"
	PurposeReschedule          NotificationPurpose = "reschedule"
	PurposeCompleted           NotificationPurpose = "completed"
	PurposeApplication         NotificationPurpose = "application"
	PurposeApplicationAccepted NotificationPurpose = "application_accepted"
	PurposeApplicationRejected NotificationPurpose = "application_rejected"
)

// IsTerminal reports whether no further transition may leave s. Completed
// is not terminal: a swept consultation can still be marked paid once the
// client settles the fee.
func (s ConsultationStatus) IsTerminal() bool {
	return s == ConsultationRejected || s == ConsultationCompletedPaid
}

func ValidConsultationStatus(s ConsultationStatus) bool {
	switch s {
	case ConsultationPending, ConsultationUnpaid, ConsultationUpcoming,
		ConsultationRejected, ConsultationCompleted, ConsultationCompletedPaid:
		return true
	}
	return false
}

func ValidPaymentMode(m PaymentMode) bool {
	return m == PaymentModeGCash || m == PaymentModeOverTheCounter
}

func ValidConsultationMode(m ConsultationMode) bool {
	return m == ModeOnline || m == ModeInPerson
}
