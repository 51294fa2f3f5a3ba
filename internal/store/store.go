// Package store provides persistence backed by Postgres.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrFilmExists signals the film name is already taken.
	ErrFilmExists = errors.New("film name already exists")
	// ErrEmailTaken signals the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrLoginTaken signals the login is already taken.
	ErrLoginTaken = errors.New("login already taken")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FilmExists reports whether a film row with this id exists.
func (s *Store) FilmExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM films WHERE id = $1)`, id)
}

// UserExists reports whether a user row with this id exists.
func (s *Store) UserExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id)
}

// GenreExists reports whether a genre row with this id exists.
func (s *Store) GenreExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM genres WHERE id = $1)`, id)
}

// RatingExists reports whether a rating row with this id exists.
func (s *Store) RatingExists(ctx context.Context, id int64) (bool, error) {
	return s.exists(ctx, `SELECT EXISTS(SELECT 1 FROM ratings WHERE id = $1)`, id)
}

func (s *Store) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("check existence: %w", err)
	}
	return ok, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
