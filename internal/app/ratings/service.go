// Package ratings exposes the read-only MPA rating reference data.
package ratings

import (
	"context"

	"filmgraph/internal/model"
)

// Store captures the lookups the rating service needs.
type Store interface {
	Ratings(ctx context.Context) ([]model.Rating, error)
	RatingByID(ctx context.Context, id int64) (model.Rating, error)
}

// Service lists ratings and resolves single ids.
type Service interface {
	List(ctx context.Context) ([]model.Rating, error)
	Get(ctx context.Context, id int64) (model.Rating, error)
}

type service struct {
	store Store
}

// New wires a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]model.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Ratings(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (model.Rating, error) {
	if err := ctx.Err(); err != nil {
		return model.Rating{}, err
	}
	return s.store.RatingByID(ctx, id)
}
