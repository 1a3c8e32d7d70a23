package models

import "github.com/google/uuid"

// User is an account holder. Email doubles as the external identity key and
// is unique across all users.
//
// Password is stored and compared verbatim. Plaintext credentials are a known
// weakness of this app, kept as observed rather than silently hashed.
type User struct {
	ID       uuid.UUID `db:"id"`
	Email    string    `db:"email"`
	Password string    `db:"password"`
}
