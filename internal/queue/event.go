// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types published to the auth.events queue.
const (
    EventUserRegistered         = "user.registered"
    EventPasswordResetRequested = "password.reset.requested"
    EventPasswordResetCompleted = "password.reset.completed"
)

// AuthEvent is published whenever an account-lifecycle action completes.
// It contains enough information for downstream consumers to build an
// audit log or trigger notifications without querying the primary
// database. Events are fire-and-forget: publishing failures never affect
// the HTTP response.
type AuthEvent struct {
    Type       string `json:"type"`
    UserID     uint64 `json:"user_id,omitempty"`
    Email      string `json:"email"`
    Username   string `json:"username,omitempty"`
    OccurredAt string `json:"occurred_at"`
}
