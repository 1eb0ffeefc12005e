// Package repository implements the data access layer over MySQL. The
// sentinel errors below let handlers and services distinguish failure
// scenarios without inspecting driver error strings themselves.
package repository

import "errors"

// ErrUserExists is returned when registering a username that is
// already taken. Uniqueness is enforced by the database.
var ErrUserExists = errors.New("user already exists")

// ErrTableExists is returned when adding a table whose table number
// is already registered.
var ErrTableExists = errors.New("table already exists")

// ErrTableNotFound is returned when a reservation references a table
// id that does not exist.
var ErrTableNotFound = errors.New("table not found")

// ErrTableUnavailable is returned when the conditional status update
// affects no rows: the table is already Reserved, either beforehand or
// because a concurrent reservation won the race.
var ErrTableUnavailable = errors.New("table unavailable")
