package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/task-manager/internal/model"
)

// UserRepo provides access to the users, roles and user_roles tables.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and its role links in one transaction and returns
// the new ID. The password hash must already be computed by the caller.
// The existence checks and the insert run under the same transaction so
// two concurrent registrations for the same identity cannot both succeed;
// the unique indexes on email and username are the final arbiter and a
// duplicate-key failure is mapped to the matching sentinel error.
func (r *UserRepo) Create(ctx context.Context, username, email, passwordHash string, roleIDs []uint8) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email=?)", email).Scan(&exists); err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrEmailExists
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username=?)", username).Scan(&exists); err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrUsernameExists
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
		username, email, passwordHash)
	if err != nil {
		// 1062 = duplicate key; the pre-checks race with concurrent inserts.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			if strings.Contains(err.Error(), "username") {
				return 0, ErrUsernameExists
			}
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, rid := range roleIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_roles (user_id, role_id) VALUES (?,?)", uint64(id), rid); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// FindByEmail fetches a user by normalized email, including role names.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.findBy(ctx, "email", email)
}

// FindByUsername fetches a user by username, including role names.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findBy(ctx, "username", strings.TrimSpace(username))
}

// FindByID fetches a user by primary key, including role names.
func (r *UserRepo) FindByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return r.loadRoles(ctx, u)
}

func (r *UserRepo) findBy(ctx context.Context, column, value string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,created_at,updated_at FROM users WHERE "+column+"=? LIMIT 1",
		value).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return r.loadRoles(ctx, u)
}

// loadRoles attaches the user's role names resolved through user_roles.
func (r *UserRepo) loadRoles(ctx context.Context, u model.User) (model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT r.name FROM roles r JOIN user_roles ur ON ur.role_id=r.id WHERE ur.user_id=?", u.ID)
	if err != nil {
		return model.User{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return model.User{}, err
		}
		u.Roles = append(u.Roles, name)
	}
	return u, rows.Err()
}

// ExistsByEmail reports whether a user with the given email exists.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email=?)", email).Scan(&exists)
	return exists, err
}

// ExistsByUsername reports whether a user with the given username exists.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username=?)", strings.TrimSpace(username)).Scan(&exists)
	return exists, err
}

// UpdatePassword overwrites the stored password hash for a user.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET password_hash=? WHERE id=?", passwordHash, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
