package store_test

import (
	"context"
	"errors"
	"testing"

	"getitdone/store"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	if _, err := m.CreateUser(ctx, "a@x.com", "pw1"); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	_, err := m.CreateUser(ctx, "a@x.com", "other")
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Errorf("CreateUser() with taken email error = %v, want ErrEmailTaken", err)
	}
	if got := m.UserCount(); got != 1 {
		t.Errorf("UserCount() = %d, want 1", got)
	}
}

func TestUserByEmail(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	created, err := m.CreateUser(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	got, err := m.UserByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("UserByEmail() error = %v", err)
	}
	if got.ID != created.ID || got.Email != "a@x.com" || got.Password != "pw1" {
		t.Errorf("UserByEmail() = %+v, want %+v", got, created)
	}

	if _, err := m.UserByEmail(ctx, "nobody@x.com"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("UserByEmail() for unknown email error = %v, want ErrNotFound", err)
	}
}

func TestTaskLifecycle(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	owner, err := m.CreateUser(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	first, err := m.CreateTask(ctx, owner.ID, "Buy milk")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if first.Completed {
		t.Errorf("CreateTask() returned a completed task")
	}
	second, err := m.CreateTask(ctx, owner.ID, "Write spec")
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	open, done, err := m.TasksByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("TasksByOwner() error = %v", err)
	}
	if len(open) != 2 || len(done) != 0 {
		t.Fatalf("TasksByOwner() = %d open, %d done, want 2 open, 0 done", len(open), len(done))
	}
	if open[0].ID != first.ID || open[1].ID != second.ID {
		t.Errorf("TasksByOwner() order = [%d %d], want insertion order [%d %d]",
			open[0].ID, open[1].ID, first.ID, second.ID)
	}

	if err := m.CompleteTask(ctx, first.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}

	open, done, err = m.TasksByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("TasksByOwner() error = %v", err)
	}
	if len(open) != 1 || len(done) != 1 {
		t.Errorf("after complete: %d open, %d done, want 1 open, 1 done", len(open), len(done))
	}
	if done[0].Name != "Buy milk" {
		t.Errorf("completed task = %q, want %q", done[0].Name, "Buy milk")
	}

	// Soft delete: the row is still there.
	if got := m.TaskCount(owner.ID); got != 2 {
		t.Errorf("TaskCount() after complete = %d, want 2", got)
	}
}

func TestCompleteUnknownTask(t *testing.T) {
	m := store.NewMemory()

	err := m.CompleteTask(context.Background(), 42)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("CompleteTask() for unknown id error = %v, want ErrNotFound", err)
	}
}

func TestTasksScopedToOwner(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	alice, _ := m.CreateUser(ctx, "a@x.com", "pw1")
	bob, _ := m.CreateUser(ctx, "b@x.com", "pw2")

	if _, err := m.CreateTask(ctx, alice.ID, "Buy milk"); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	open, done, err := m.TasksByOwner(ctx, bob.ID)
	if err != nil {
		t.Fatalf("TasksByOwner() error = %v", err)
	}
	if len(open) != 0 || len(done) != 0 {
		t.Errorf("TasksByOwner() for other owner = %d open, %d done, want none", len(open), len(done))
	}
}
