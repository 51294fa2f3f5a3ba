// Package genres exposes the read-only genre reference data.
package genres

import (
	"context"

	"filmgraph/internal/model"
)

// Store captures the lookups the genre service needs.
type Store interface {
	Genres(ctx context.Context) ([]model.Genre, error)
	GenreByID(ctx context.Context, id int64) (model.Genre, error)
}

// Service lists genres and resolves single ids.
type Service interface {
	List(ctx context.Context) ([]model.Genre, error)
	Get(ctx context.Context, id int64) (model.Genre, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]model.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Genres(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (model.Genre, error) {
	if err := ctx.Err(); err != nil {
		return model.Genre{}, err
	}
	return s.store.GenreByID(ctx, id)
}
