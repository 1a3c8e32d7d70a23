package store

import (
	"context"
	"sync"

	"getitdone/models"

	"github.com/google/uuid"
)

// Memory is a map-backed Store. It backs the tests and serves as a fallback
// when no DATABASE_URL is configured. Slices keep insertion order, matching
// the ORDER BY id behavior of the Postgres store.
type Memory struct {
	mu     sync.Mutex
	users  []models.User
	tasks  []models.Task
	nextID int
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (m *Memory) CreateUser(_ context.Context, email, password string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}
	u := models.User{ID: uuid.New(), Email: email, Password: password}
	m.users = append(m.users, u)
	return u, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) CreateTask(_ context.Context, ownerID uuid.UUID, name string) (models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := models.Task{ID: m.nextID, OwnerID: ownerID, Name: name}
	m.nextID++
	m.tasks = append(m.tasks, t)
	return t, nil
}

func (m *Memory) TasksByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Task, []models.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var open, done []models.Task
	for _, t := range m.tasks {
		if t.OwnerID != ownerID {
			continue
		}
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}
	return open, done, nil
}

// CompleteTask matches the Postgres store: any existing task can be
// completed by id, regardless of owner.
func (m *Memory) CompleteTask(_ context.Context, taskID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.tasks {
		if m.tasks[i].ID == taskID {
			m.tasks[i].Completed = true
			return nil
		}
	}
	return ErrNotFound
}

// UserCount reports the number of stored users. Test helper.
func (m *Memory) UserCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// TaskCount reports the total number of tasks owned by ownerID, completed
// or not. Test helper.
func (m *Memory) TaskCount(ownerID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tasks {
		if t.OwnerID == ownerID {
			n++
		}
	}
	return n
}
