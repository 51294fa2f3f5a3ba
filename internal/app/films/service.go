// Package films coordinates film catalog workflows: CRUD, likes and the
// popularity ranking.
package films

import (
	"context"

	"filmgraph/internal/model"
	"filmgraph/internal/validate"
)

// DefaultPopularLimit caps the popularity ranking when the caller does not
// ask for a specific count.
const DefaultPopularLimit = 10

// ErrNegativeLimit rejects a negative popularity cap.
var ErrNegativeLimit = model.NewValidationError("popular film count cannot be negative")

// Store captures the persistence needs for film workflows.
type Store interface {
	CreateFilm(ctx context.Context, film *model.Film) (*model.Film, error)
	UpdateFilm(ctx context.Context, film *model.Film) (*model.Film, error)
	DeleteFilm(ctx context.Context, id int64) error
	Films(ctx context.Context) ([]*model.Film, error)
	FilmByID(ctx context.Context, id int64) (*model.Film, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	PopularFilms(ctx context.Context, limit int64) ([]*model.Film, error)
}

// Service exposes film-related workflows.
type Service interface {
	Create(ctx context.Context, film *model.Film) (*model.Film, error)
	Update(ctx context.Context, film *model.Film) (*model.Film, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.Film, error)
	Get(ctx context.Context, id int64) (*model.Film, error)
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	Popular(ctx context.Context, limit int64) ([]*model.Film, error)
}

type service struct {
	store Store
	check *validate.Checker
}

// New wires a Service backed by the provided Store and existence Checker.
func New(store Store, check *validate.Checker) Service {
	return &service{store: store, check: check}
}

func (s *service) Create(ctx context.Context, film *model.Film) (*model.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateFilm(ctx, film)
}

func (s *service) Update(ctx context.Context, film *model.Film) (*model.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateFilm(ctx, film)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteFilm(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*model.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Films(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.FilmByID(ctx, id)
}

// AddLike requires both endpoints to exist before any write happens.
func (s *service) AddLike(ctx context.Context, filmID, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.check.RequireFilm(ctx, filmID); err != nil {
		return err
	}
	if err := s.check.RequireUser(ctx, userID); err != nil {
		return err
	}
	return s.store.AddLike(ctx, filmID, userID)
}

// RemoveLike requires both endpoints to exist; removing an absent like is a
// no-op.
func (s *service) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.check.RequireFilm(ctx, filmID); err != nil {
		return err
	}
	if err := s.check.RequireUser(ctx, userID); err != nil {
		return err
	}
	return s.store.RemoveLike(ctx, filmID, userID)
}

// Popular returns at most limit films ranked by like-count. A limit of zero
// yields an empty list; a negative limit is a validation failure.
func (s *service) Popular(ctx context.Context, limit int64) ([]*model.Film, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, ErrNegativeLimit
	}
	return s.store.PopularFilms(ctx, limit)
}
