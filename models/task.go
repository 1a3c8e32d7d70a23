package models

import "github.com/google/uuid"

// Task belongs to exactly one user and is never reassigned. "Deleting" a
// task sets Completed instead of removing the row.
type Task struct {
	ID        int       `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Completed bool      `db:"completed"`
}
