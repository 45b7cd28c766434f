package handler

// stores.go declares the collaborator interfaces the handlers depend on.
// The concrete MySQL repositories in internal/repository satisfy these;
// tests substitute in-memory fakes. Keeping the interfaces on the consumer
// side means the handlers state exactly what they need and nothing more.

import (
	"context"
	"time"

	"github.com/iliyamo/task-manager/internal/model"
)

// CredentialStore holds user records and owns their durability.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByID(ctx context.Context, id uint64) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Create persists a new user with the given role links; the check-then-
	// insert must be transactional so concurrent duplicate registrations
	// cannot both succeed.
	Create(ctx context.Context, username, email, passwordHash string, roleIDs []uint8) (uint64, error)
	UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error
}

// RoleLookup resolves role references during registration.
type RoleLookup interface {
	FindByName(ctx context.Context, name string) (model.Role, error)
	FindByID(ctx context.Context, id uint8) (model.Role, error)
}

// ResetTokenStore persists password-reset tokens. Delete reports whether
// a row was removed so redemption can be made single-use under races.
type ResetTokenStore interface {
	Save(ctx context.Context, userID uint64, token string, expiresAt time.Time) error
	FindByToken(ctx context.Context, token string) (model.PasswordResetToken, error)
	FindActiveForUser(ctx context.Context, userID uint64) (model.PasswordResetToken, error)
	Delete(ctx context.Context, token string) (bool, error)
	DeleteForUser(ctx context.Context, userID uint64) error
}

// TaskStore provides persistence for tasks.
type TaskStore interface {
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id uint64) (model.Task, error)
	Create(ctx context.Context, title, description string, completed bool) (model.Task, error)
	Update(ctx context.Context, id uint64, title, description string, completed bool) (model.Task, error)
	Delete(ctx context.Context, id uint64) error
}
