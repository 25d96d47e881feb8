package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/realty/internal/user"
)

const (
	retryAttempts = 2
	retryBackoff  = 500 * time.Millisecond
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isTransient reports whether an error is worth retrying: dropped
// connections and Postgres class 08 (connection exception) or admin
// shutdown errors.
func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "57P01"
	}

	return false
}

// withRetry runs fn, retrying transient failures a fixed number of times
// with a fixed backoff before surfacing the last error. The directory is
// queried on every breakdown read, so brief storage unavailability should
// not fail those requests.
func withRetry(ctx context.Context, fn func() error) error {
	var err error

	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil || !isTransient(err) || attempt == retryAttempts {
			return err
		}

		select {
		case <-time.After(retryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (email, name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, u.Email, u.Name).
			Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	})
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT id, email, name, created_at, updated_at FROM users WHERE id = $1`

	var u *user.User

	err := withRetry(ctx, func() error {
		var scanErr error
		u, scanErr = scanUser(s.db.QueryRowContext(ctx, query, id))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT id, email, name, created_at, updated_at FROM users WHERE email = $1`

	var u *user.User

	err := withRetry(ctx, func() error {
		var scanErr error
		u, scanErr = scanUser(s.db.QueryRowContext(ctx, query, email))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	return u, nil
}

func (s *Store) ListUsers(ctx context.Context, skip, take int) ([]*user.User, int, error) {
	var total int

	err := withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}

	query := `
		SELECT id, email, name, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var users []*user.User

	err = withRetry(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, query, take, skip)
		if err != nil {
			return err
		}
		defer rows.Close()

		users = users[:0]

		for rows.Next() {
			var u user.User
			if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
				return err
			}

			users = append(users, &u)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	return users, total, nil
}

func (s *Store) GetBasicByIDs(ctx context.Context, ids []uuid.UUID) ([]user.Basic, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, name FROM users WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	var basics []user.Basic

	err := withRetry(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		basics = basics[:0]

		for rows.Next() {
			var b user.Basic
			if err := rows.Scan(&b.ID, &b.Name); err != nil {
				return err
			}

			basics = append(basics, b)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("getting users by ids: %w", err)
	}

	return basics, nil
}
