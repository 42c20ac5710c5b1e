package auth

import (
	"lawlink_backend/internal/models"
)

// Operation names for the authorization policy. Handlers declare the
// operation they guard; the middleware checks the caller's role against
// Policy before the handler runs.
const (
	OpConsultationCreate     = "consultations:create"
	OpConsultationRead       = "consultations:read"
	OpConsultationTransition = "consultations:transition"
	OpConsultationReschedule = "consultations:reschedule"
	OpPaymentSubmit          = "payments:submit"
	OpPaymentConfirm         = "payments:confirm"
	OpPaymentDeny            = "payments:deny"
	OpPaymentRead            = "payments:read"
	OpNotificationsRead      = "notifications:read"
	OpAvailabilityRead       = "availability:read"
	OpAvailabilityWrite      = "availability:write"
	OpAffiliationRequest     = "affiliations:request"
	OpAffiliationDecide      = "affiliations:decide"
	OpNoteRead               = "notes:read"
)

// Policy maps each operation to the roles allowed to invoke it.
var Policy = map[string][]models.UserRole{
	OpConsultationCreate:     {models.UserRoleClient},
	OpConsultationRead:       {models.UserRoleClient, models.UserRoleLawyer, models.UserRoleSecretary, models.UserRoleAdmin},
	OpConsultationTransition: {models.UserRoleLawyer, models.UserRoleSecretary},
	OpConsultationReschedule: {models.UserRoleClient, models.UserRoleLawyer},
	OpPaymentSubmit:          {models.UserRoleClient},
	OpPaymentConfirm:         {models.UserRoleLawyer},
	OpPaymentDeny:            {models.UserRoleLawyer},
	OpPaymentRead:            {models.UserRoleClient, models.UserRoleLawyer},
	OpNotificationsRead:      {models.UserRoleClient, models.UserRoleLawyer, models.UserRoleSecretary},
	OpAvailabilityRead:       {models.UserRoleClient, models.UserRoleLawyer, models.UserRoleSecretary},
	OpAvailabilityWrite:      {models.UserRoleLawyer},
	OpAffiliationRequest:     {models.UserRoleSecretary},
	OpAffiliationDecide:      {models.UserRoleLawyer},
	OpNoteRead:               {models.UserRoleClient, models.UserRoleLawyer},
}

// Allowed reports whether role may invoke operation.
func Allowed(role models.UserRole, operation string) bool {
	roles, exists := Policy[operation]
	if !exists {
		return false
	}

	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
