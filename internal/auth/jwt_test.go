package auth

import (
	"testing"
	"time"
)

func TestIssueAndSubject_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec("super-secret", time.Hour)
	tok, err := c.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if got := c.Subject(tok); got != "a@x.com" {
		t.Fatalf("subject mismatch: got %q want %q", got, "a@x.com")
	}
	if got := c.Email(tok); got != "a@x.com" {
		t.Fatalf("email claim mismatch: got %q want %q", got, "a@x.com")
	}
}

func TestSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec("right-secret", time.Hour).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if got := NewCodec("wrong-secret", time.Hour).Subject(tok); got != "" {
		t.Fatalf("expected empty subject for bad signature, got %q", got)
	}
}

func TestSubject_Malformed(t *testing.T) {
	t.Parallel()

	c := NewCodec("k", time.Hour)
	for _, tok := range []string{"", "not.a.jwt", "a.b", "xxxxx"} {
		if got := c.Subject(tok); got != "" {
			t.Fatalf("expected empty subject for %q, got %q", tok, got)
		}
	}
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	c := NewCodec("k", time.Hour)

	live, err := c.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if c.IsExpired(live) {
		t.Fatalf("fresh token reported expired")
	}

	stale, err := NewCodec("k", -time.Minute).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if !c.IsExpired(stale) {
		t.Fatalf("stale token not reported expired")
	}

	// Verification failure counts as expired.
	if !c.IsExpired("garbage") {
		t.Fatalf("unverifiable token not reported expired")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	c := NewCodec("k", time.Hour)
	tok, err := c.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if !c.Validate(tok, "a@x.com") {
		t.Fatalf("valid token rejected")
	}
	if c.Validate(tok, "b@x.com") {
		t.Fatalf("token accepted for wrong identity")
	}
	if c.Validate("garbage", "a@x.com") {
		t.Fatalf("garbage token accepted")
	}

	stale, err := NewCodec("k", -time.Minute).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if c.Validate(stale, "a@x.com") {
		t.Fatalf("expired token accepted")
	}
}
