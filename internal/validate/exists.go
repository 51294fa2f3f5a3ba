package validate

import (
	"context"
	"fmt"

	"filmgraph/internal/model"
)

// Existence is the id-lookup surface the Checker needs from a store backend.
type Existence interface {
	FilmExists(ctx context.Context, id int64) (bool, error)
	UserExists(ctx context.Context, id int64) (bool, error)
	GenreExists(ctx context.Context, id int64) (bool, error)
	RatingExists(ctx context.Context, id int64) (bool, error)
}

// Checker gates mutations on the existence of referenced entities.
type Checker struct {
	store Existence
}

// NewChecker wires a Checker backed by the provided store.
func NewChecker(store Existence) *Checker {
	return &Checker{store: store}
}

// RequireFilm fails with a NotFoundError unless a film with this id exists.
func (c *Checker) RequireFilm(ctx context.Context, id int64) error {
	return c.require(ctx, "film", id, c.store.FilmExists)
}

// RequireUser fails with a NotFoundError unless a user with this id exists.
func (c *Checker) RequireUser(ctx context.Context, id int64) error {
	return c.require(ctx, "user", id, c.store.UserExists)
}

// RequireGenre fails with a NotFoundError unless a genre with this id exists.
func (c *Checker) RequireGenre(ctx context.Context, id int64) error {
	return c.require(ctx, "genre", id, c.store.GenreExists)
}

// RequireRating fails with a NotFoundError unless a rating with this id exists.
func (c *Checker) RequireRating(ctx context.Context, id int64) error {
	return c.require(ctx, "rating", id, c.store.RatingExists)
}

func (c *Checker) require(ctx context.Context, entity string, id int64, lookup func(context.Context, int64) (bool, error)) error {
	ok, err := lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("check %s id=%d: %w", entity, id, err)
	}
	if !ok {
		return model.NewNotFoundError(entity, id)
	}
	return nil
}
