package model

import "time"

// User represents an application user record as stored in the `users`
// table. Accounts are created at registration and never modified or
// deleted afterwards; only the bcrypt hash of the password is kept,
// never the raw value.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
