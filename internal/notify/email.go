package notify

import (
	"fmt"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends the digest through an external SMTP relay.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendDigest delivers one plain-text email. Failure is the caller's to
// report; nothing already written to disk is rolled back.
func (m *Mailer) SendDigest(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}

// EmailChannel exposes the mailer as a digest delivery channel.
type EmailChannel struct {
	Mailer  *Mailer
	Subject string
}

func (c EmailChannel) Name() string { return "email" }

func (c EmailChannel) Deliver(matches []models.ScoredMatch) error {
	return c.Mailer.SendDigest(c.Subject, BuildDigest(matches))
}
