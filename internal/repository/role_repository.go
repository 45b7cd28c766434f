package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/task-manager/internal/model"
)

// RoleRepo reads the immutable roles reference table.
type RoleRepo struct{ DB *sql.DB }

func NewRoleRepo(db *sql.DB) *RoleRepo { return &RoleRepo{DB: db} }

// FindByName looks up a role by its name (case-insensitive).
func (r *RoleRepo) FindByName(ctx context.Context, name string) (model.Role, error) {
	var role model.Role
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name FROM roles WHERE name=? LIMIT 1",
		strings.ToUpper(strings.TrimSpace(name))).Scan(&role.ID, &role.Name)
	if err == sql.ErrNoRows {
		return model.Role{}, ErrNotFound
	}
	return role, err
}

// FindByID looks up a role by its numeric identifier.
func (r *RoleRepo) FindByID(ctx context.Context, id uint8) (model.Role, error) {
	var role model.Role
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name FROM roles WHERE id=? LIMIT 1", id).Scan(&role.ID, &role.Name)
	if err == sql.ErrNoRows {
		return model.Role{}, ErrNotFound
	}
	return role, err
}
