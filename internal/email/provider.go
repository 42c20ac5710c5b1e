package email

// Provider sends the transactional mail the booking flow produces. All
// sends are best-effort side channels; callers log failures and move on.
type Provider interface {
	// SendPaymentConfirmed tells a client their GCash receipt was accepted
	// and the consultation is booked.
	SendPaymentConfirmed(to, name string, consultationID uint) error

	// SendAffiliationAccepted tells a secretary a lawyer approved their
	// application.
	SendAffiliationAccepted(to, name string) error
}
