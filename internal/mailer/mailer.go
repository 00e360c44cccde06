// Package mailer sends outbound mail over SMTP. The site only sends two
// kinds of messages: subscription confirmations and contact form relays.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// ErrNotConfigured reports a send attempt without SMTP configuration.
var ErrNotConfigured = errors.New("mailer is not configured")

// Mailer sends a plain text message. Handlers depend on this interface so
// tests can substitute a fake.
type Mailer interface {
	Send(to []string, subject, body string) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// SMTPMailer is the production Mailer.
type SMTPMailer struct {
	config Config
	server string
	auth   smtp.Auth
}

// New constructs an SMTPMailer from config.
func New(config Config) *SMTPMailer {
	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPMailer{
		config: config,
		server: config.Host + ":" + config.Port,
		auth:   auth,
	}
}

// IsConfigured reports whether enough settings exist to send mail.
func (m *SMTPMailer) IsConfigured() bool {
	return m.config.Host != "" && m.config.Port != "" && m.config.From != ""
}

// Send delivers a plain text message to the given recipients.
func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if !m.IsConfigured() {
		return ErrNotConfigured
	}

	from := m.config.From
	if m.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.config.FromName, m.config.From)
	}

	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s\r\n"+
			"Subject: %s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		strings.Join(to, ", "),
		from,
		subject,
		body,
	))

	return smtp.SendMail(m.server, m.auth, m.config.From, to, msg)
}
