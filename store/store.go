package store

import (
	"context"
	"errors"

	"getitdone/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a lookup resolves to no row.
	ErrNotFound = errors.New("store: not found")
	// ErrEmailTaken is returned by CreateUser when the email is already registered.
	ErrEmailTaken = errors.New("store: email already registered")
)

// UserStore persists accounts. Users are created at registration and never
// updated or deleted; there is no account-management flow.
type UserStore interface {
	CreateUser(ctx context.Context, email, password string) (models.User, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
}

// TaskStore persists tasks. CompleteTask is the only mutation; rows are
// never physically removed.
type TaskStore interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, name string) (models.Task, error)
	TasksByOwner(ctx context.Context, ownerID uuid.UUID) (open, done []models.Task, err error)
	CompleteTask(ctx context.Context, taskID int) error
}

// Store is the full persistence surface the handlers need.
type Store interface {
	UserStore
	TaskStore
}
