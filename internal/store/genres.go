package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"filmgraph/internal/model"
)

// Genres returns all genres sorted ascending by id.
func (s *Store) Genres(ctx context.Context) ([]model.Genre, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name
		FROM genres
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("select genres: %w", err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}
	return genres, nil
}

// GenreByID returns the genre or a NotFoundError.
func (s *Store) GenreByID(ctx context.Context, id int64) (model.Genre, error) {
	var g model.Genre
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name
		FROM genres
		WHERE id = $1
	`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Genre{}, model.NewNotFoundError("genre", id)
		}
		return model.Genre{}, fmt.Errorf("select genre: %w", err)
	}
	return g, nil
}
