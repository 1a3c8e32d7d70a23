package sessions

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis initializes a Redis client with connection pooling.
func OpenRedis(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		log.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis db 0: %v", err)
	}

	return client
}

// Redis stores each session as a hash under "session:<token>" with a TTL.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *Redis) Start(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	token := GenerateToken(32)
	now := time.Now()

	fields := map[string]any{
		"email":      "",
		"created_at": now.Format(time.RFC3339),
		"expires_at": now.Add(TTL).Format(time.RFC3339),
	}
	key := sessionKey(token)
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return "", err
	}
	if err := s.client.Expire(ctx, key, TTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Redis) SetIdentity(ctx context.Context, token, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := sessionKey(token)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNoSession
	}
	return s.client.HSet(ctx, key, "email", email).Err()
}

func (s *Redis) Identity(ctx context.Context, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := s.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrNoSession
	}

	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"])
	if err != nil || !time.Now().Before(expiresAt) {
		return "", ErrNoSession
	}

	return data["email"], nil
}

func (s *Redis) ClearIdentity(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := sessionKey(token)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNoSession
	}
	return s.client.HSet(ctx, key, "email", "").Err()
}

func (s *Redis) SetFlash(ctx context.Context, token, msg string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.client.HSet(ctx, sessionKey(token), "flash", msg).Err()
}

func (s *Redis) PopFlash(ctx context.Context, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := sessionKey(token)
	msg, err := s.client.HGet(ctx, key, "flash").Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if err := s.client.HDel(ctx, key, "flash").Err(); err != nil {
		return "", err
	}
	return msg, nil
}
