// Package mail delivers the password-reset email. Sending is synchronous:
// the caller logs failures but never surfaces them, so the HTTP response
// for a reset request is identical whether or not the mail went out.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Dispatcher sends account emails. The auth handler depends on this
// interface so tests can capture outgoing mail without a server.
type Dispatcher interface {
	SendPasswordResetEmail(toEmail, token string) error
}

// SMTPMailer sends mail through a plain SMTP submission endpoint.
type SMTPMailer struct {
	Host        string // SMTP server host; empty disables sending
	Port        string
	Username    string // optional; AUTH PLAIN when set
	Password    string
	From        string // envelope and header "From" address
	FrontendURL string // base URL the reset link points at
}

// SendPasswordResetEmail sends the reset link for token to toEmail.
// When no SMTP host is configured the mail is skipped and an error is
// returned so the caller can log that delivery did not happen.
func (m *SMTPMailer) SendPasswordResetEmail(toEmail, token string) error {
	toEmail = strings.TrimSpace(toEmail)
	if m.Host == "" {
		return fmt.Errorf("smtp not configured, dropping reset mail for %s", toEmail)
	}
	msg := buildResetMessage(m.From, toEmail, ResetLink(m.FrontendURL, token))
	var a smtp.Auth
	if m.Username != "" {
		a = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	return smtp.SendMail(m.Host+":"+m.Port, a, m.From, []string{toEmail}, msg)
}

// ResetLink builds the frontend URL a reset email points at.
func ResetLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/reset-password?token=" + token
}

// buildResetMessage renders the full RFC 5322 message, headers included.
func buildResetMessage(from, to, link string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: Password Reset Request\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("<p>You have requested a password reset.</p>")
	b.WriteString("<p>Please click on the following link to reset your password:</p>")
	b.WriteString(`<p><a href="` + link + `">` + link + `</a></p>`)
	b.WriteString("<p>This link will expire in 1 hour.</p>")
	b.WriteString("<p>If you did not request this, please ignore this email.</p>")
	return []byte(b.String())
}
