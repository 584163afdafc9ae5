package tools

import (
	"fmt"

	"helpdesk/config"

	"gopkg.in/gomail.v2"
)

// Mailer é o transporte de e-mail visto pelo worker de notificações.
// Em testes basta trocar por um fake.
type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPMailer envia texto simples via SMTP (gomail).
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewSMTPMailer(cfg config.Configuration) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.Mail.SmtpHost,
		Port:     cfg.Mail.SmtpPort,
		Username: cfg.Mail.SmtpUser,
		Password: cfg.Mail.SmtpPass,
		From:     cfg.Mail.From,
	}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
