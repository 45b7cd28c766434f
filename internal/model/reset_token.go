package model

import "time"

// PasswordResetToken models an entry in the `password_reset_tokens`
// table. Each token belongs to a user and is valid until ExpiresAt.
// A token is single-use: redemption deletes the row, and issuing a
// new token for the same user deletes any still-active predecessor,
// so at most one active token exists per user. Expired rows are
// simply ignored (lazy invalidation, no background sweep).
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  Token     – opaque random token value (UUID).
//  ExpiresAt – expiration timestamp of the token.
//  CreatedAt – timestamp of creation.
type PasswordResetToken struct {
    ID        uint64    // password_reset_tokens.id
    UserID    uint64    // password_reset_tokens.user_id
    Token     string    // password_reset_tokens.token
    ExpiresAt time.Time // password_reset_tokens.expires_at
    CreatedAt time.Time // password_reset_tokens.created_at
}
