package sessions

import (
	"context"
	"sync"
	"time"

	"getitdone/models"
)

// Memory keeps sessions in a map. It backs the tests and serves as a
// fallback when no REDIS_URL is configured.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*models.Session)}
}

func (s *Memory) Start(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := GenerateToken(32)
	now := time.Now()
	s.sessions[token] = &models.Session{
		Token:     token,
		CreatedAt: now.Format(time.RFC3339),
		ExpiresAt: now.Add(TTL).Format(time.RFC3339),
	}
	return token, nil
}

func (s *Memory) SetIdentity(_ context.Context, token, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrNoSession
	}
	sess.Email = email
	return nil
}

func (s *Memory) Identity(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", ErrNoSession
	}
	expiresAt, err := time.Parse(time.RFC3339, sess.ExpiresAt)
	if err != nil || !time.Now().Before(expiresAt) {
		return "", ErrNoSession
	}
	return sess.Email, nil
}

func (s *Memory) ClearIdentity(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrNoSession
	}
	sess.Email = ""
	return nil
}

func (s *Memory) SetFlash(_ context.Context, token, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return ErrNoSession
	}
	sess.Flash = msg
	return nil
}

func (s *Memory) PopFlash(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return "", nil
	}
	msg := sess.Flash
	sess.Flash = ""
	return msg, nil
}
