package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"getitdone/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id SERIAL PRIMARY KEY,
	owner_id UUID NOT NULL REFERENCES users (id),
	name TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE
);`

// Postgres is the production Store, backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to the database, verifies the connection and makes
// sure the schema exists.
func OpenPostgres(dsn string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres DSN: %w", err)
	}

	config.MaxConns = 50
	config.MinConns = 2
	config.MaxConnIdleTime = 20 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) CreateUser(ctx context.Context, email, password string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	u := models.User{Email: email, Password: password}
	stmt := "INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id;"
	if err := p.pool.QueryRow(ctx, stmt, email, password).Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, ErrEmailTaken
		}
		log.Println("Error inserting user:", err)
		return models.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

func (p *Postgres) UserByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var u models.User
	stmt := "SELECT id, email, password FROM users WHERE email = $1;"
	row := p.pool.QueryRow(ctx, stmt, email)
	if err := row.Scan(&u.ID, &u.Email, &u.Password); err != nil {
		if err == pgx.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

func (p *Postgres) CreateTask(ctx context.Context, ownerID uuid.UUID, name string) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	t := models.Task{OwnerID: ownerID, Name: name}
	stmt := "INSERT INTO tasks (owner_id, name) VALUES ($1, $2) RETURNING id;"
	if err := p.pool.QueryRow(ctx, stmt, ownerID, name).Scan(&t.ID); err != nil {
		log.Println("Error inserting task:", err)
		return models.Task{}, fmt.Errorf("inserting task: %w", err)
	}
	return t, nil
}

// TasksByOwner returns the owner's incomplete and completed tasks as two
// disjoint slices, both in insertion order.
func (p *Postgres) TasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, []models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := "SELECT id, owner_id, name, completed FROM tasks WHERE owner_id = $1 ORDER BY id;"
	rows, err := p.pool.Query(ctx, stmt, ownerID)
	if err != nil {
		log.Println("Error querying tasks:", err)
		return nil, nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var open, done []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Name, &t.Completed); err != nil {
			return nil, nil, fmt.Errorf("scanning task row: %w", err)
		}
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading task rows: %w", err)
	}
	return open, done, nil
}

// CompleteTask soft-deletes the task by flipping its completed flag. There is
// no owner filter on this statement.
// TODO: scope the update to the signed-in owner once the handler passes one.
func (p *Postgres) CompleteTask(ctx context.Context, taskID int) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmt := "UPDATE tasks SET completed = TRUE WHERE id = $1;"
	tag, err := p.pool.Exec(ctx, stmt, taskID)
	if err != nil {
		log.Println("Failed to complete task:", err)
		return fmt.Errorf("completing task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// A hard delete exists below but is deliberately not routed anywhere;
// "deleting" a task means marking it completed.
//
// func (p *Postgres) DeleteTask(ctx context.Context, taskID int) error {
// 	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
// 	defer cancel()
//
// 	stmt := "DELETE FROM tasks WHERE id = $1;"
// 	_, err := p.pool.Exec(ctx, stmt, taskID)
// 	return err
// }
