package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are used internally by the repository layer; handlers define
// separate response types with appropriate JSON tags. Roles are
// normalized into the `roles` table and linked through the
// `user_roles` join table, so a loaded User carries the resolved
// role names rather than foreign keys.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Roles        – resolved role names (e.g. ROLE_USER, ROLE_ADMIN).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Username     string    // users.username
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Roles        []string  // resolved via user_roles -> roles.name
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// Role represents a row in the `roles` table.  It maps a small
// integer ID to a role name.  Roles are immutable reference data:
// they are seeded by migration and only looked up (by name or id)
// during registration.
//
// Fields:
//  ID   – numeric identifier of the role.
//  Name – unique role name (e.g. ROLE_USER, ROLE_ADMIN).
type Role struct {
    ID   uint8  // roles.id
    Name string // roles.name
}
