package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ConsultationHandler *ConsultationHandler
	PaymentHandler      *PaymentHandler
	NotificationHandler *NotificationHandler
	AvailabilityHandler *AvailabilityHandler
	AffiliationHandler  *AffiliationHandler
}
