package email

import (
	"fmt"

	"lawlink_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over a plain SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendPaymentConfirmed(to, name string, consultationID uint) error {
	subject := "Payment confirmed"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your payment for consultation #%d has been confirmed. "+
			"The consultation is now booked.</p>",
		name, consultationID,
	)
	return p.send(to, subject, body)
}

func (p *SMTPProvider) SendAffiliationAccepted(to, name string) error {
	subject := "Application accepted"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your application has been accepted. "+
			"You can now manage the lawyer's consultations.</p>",
		name,
	)
	return p.send(to, subject, body)
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUser,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
