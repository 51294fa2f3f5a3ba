package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmgraph/internal/model"
)

// Ratings returns all MPA ratings sorted ascending by id.
func (s *Store) Ratings(ctx context.Context) ([]model.Rating, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM ratings
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		var r model.Rating
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}
	return ratings, nil
}

// RatingByID returns the rating or a NotFoundError.
func (s *Store) RatingByID(ctx context.Context, id int64) (model.Rating, error) {
	var r model.Rating
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM ratings
		WHERE id = $1
	`, id).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Rating{}, model.NewNotFoundError("rating", id)
		}
		return model.Rating{}, fmt.Errorf("select rating: %w", err)
	}
	return r, nil
}
