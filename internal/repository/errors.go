// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrEmailExists and ErrUsernameExists indicate registration
// conflicts that map to a client error, while ErrNotFound signals that
// a requested row does not exist and usually maps to HTTP 404 (or, for
// reset tokens, to the invalid-or-expired-token response).
package repository

import "errors"

// ErrEmailExists is returned when an insert would violate the unique
// constraint on users.email.
var ErrEmailExists = errors.New("email already exists")

// ErrUsernameExists is returned when an insert would violate the unique
// constraint on users.username.
var ErrUsernameExists = errors.New("username already exists")

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")
