package mail

import (
	"strings"
	"testing"
)

func TestResetLink(t *testing.T) {
	got := ResetLink("http://localhost:3000", "abc-123")
	want := "http://localhost:3000/reset-password?token=abc-123"
	if got != want {
		t.Fatalf("link mismatch: got %q want %q", got, want)
	}

	// Trailing slash on the base URL must not double up.
	got = ResetLink("http://localhost:3000/", "abc-123")
	if got != want {
		t.Fatalf("link mismatch with trailing slash: got %q want %q", got, want)
	}
}

func TestBuildResetMessage(t *testing.T) {
	msg := string(buildResetMessage("no-reply@x.com", "a@x.com", "http://x/reset-password?token=tok"))

	for _, want := range []string{
		"From: no-reply@x.com\r\n",
		"To: a@x.com\r\n",
		"Subject: Password Reset Request\r\n",
		"Content-Type: text/html",
		`<a href="http://x/reset-password?token=tok">`,
		"expire in 1 hour",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	// Headers and body must be separated by a blank line.
	if !strings.Contains(msg, "\r\n\r\n") {
		t.Fatalf("no header/body separator in message")
	}
}

func TestSend_UnconfiguredHost(t *testing.T) {
	m := &SMTPMailer{From: "no-reply@x.com", FrontendURL: "http://x"}
	if err := m.SendPasswordResetEmail("a@x.com", "tok"); err == nil {
		t.Fatalf("expected error when no SMTP host configured")
	}
}
