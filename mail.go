package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/Zachkp/portfolio/internal/contact"
)

var errMailNotConfigured = errors.New("SMTP credentials not configured")

// Mailer delivers contact messages posted without JavaScript.
type Mailer interface {
	Send(m contact.Message) error
}

// smtpMailer sends through an authenticated SMTP relay.
type smtpMailer struct {
	cfg  *Config
	log  *slog.Logger
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func newSMTPMailer(cfg *Config, log *slog.Logger) *smtpMailer {
	return &smtpMailer{cfg: cfg, log: log, send: smtp.SendMail}
}

func (m *smtpMailer) Send(msg contact.Message) error {
	if !m.cfg.MailConfigured() {
		return errMailNotConfigured
	}
	to := m.cfg.ToEmail
	if to == "" {
		to = m.cfg.SMTPUser
	}

	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	if err := m.send(addr, auth, m.cfg.SMTPUser, []string{to}, composeMail(m.cfg.SMTPUser, to, msg)); err != nil {
		return fmt.Errorf("sending contact mail: %w", err)
	}
	m.log.Info("contact mail sent", "from", msg.Email)
	return nil
}

// composeMail renders the message. Header values are flattened to one line
// so a crafted name or address cannot inject headers.
func composeMail(from, to string, msg contact.Message) []byte {
	oneLine := strings.NewReplacer("\r", " ", "\n", " ")
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + oneLine.Replace(msg.Name) + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + oneLine.Replace(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
