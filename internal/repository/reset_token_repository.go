package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/task-manager/internal/model"
)

// ResetTokenRepo persists password-reset tokens. Tokens are stored in
// plaintext because they are short-lived (one hour) and single-use.
type ResetTokenRepo struct{ DB *sql.DB }

func NewResetTokenRepo(db *sql.DB) *ResetTokenRepo { return &ResetTokenRepo{DB: db} }

// Save inserts a reset token row for a user.
func (r *ResetTokenRepo) Save(ctx context.Context, userID uint64, token string, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO password_reset_tokens (user_id, token, expires_at) VALUES (?,?,?)",
		userID, token, expiresAt)
	return err
}

// FindByToken returns the token record matching the given value, expired
// or not. Callers decide what an expired record means.
func (r *ResetTokenRepo) FindByToken(ctx context.Context, token string) (model.PasswordResetToken, error) {
	var t model.PasswordResetToken
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,token,expires_at,created_at FROM password_reset_tokens WHERE token=? LIMIT 1",
		token).Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return model.PasswordResetToken{}, ErrNotFound
	}
	return t, err
}

// FindActiveForUser returns a user's not-yet-expired token, if any.
func (r *ResetTokenRepo) FindActiveForUser(ctx context.Context, userID uint64) (model.PasswordResetToken, error) {
	var t model.PasswordResetToken
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,token,expires_at,created_at FROM password_reset_tokens WHERE user_id=? AND expires_at>? LIMIT 1",
		userID, time.Now().UTC()).Scan(&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return model.PasswordResetToken{}, ErrNotFound
	}
	return t, err
}

// Delete removes the row for the given token value and reports whether a
// row was actually removed. The conditional delete is what makes token
// redemption single-use: when two redemptions race, only one of them
// observes a deleted row.
func (r *ResetTokenRepo) Delete(ctx context.Context, token string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM password_reset_tokens WHERE token=?", token)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteForUser removes all reset tokens belonging to a user. Used to
// supersede an outstanding token when a new reset is requested.
func (r *ResetTokenRepo) DeleteForUser(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM password_reset_tokens WHERE user_id=?", userID)
	return err
}
